package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Engine normalizes free-text queries: pattern extraction, tokenization,
// stopword removal, vocabulary classification and token similarity. All
// tables are fixed at construction and never mutated, so one Engine can be
// shared by concurrent callers.
type Engine struct {
	vocabulary map[string]map[string]bool
	categories []string
	stopWords  map[string]bool
	patterns   []namedPattern
}

type namedPattern struct {
	name string
	re   *regexp.Regexp
}

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

func NewEngine() *Engine {
	vocabulary := map[string][]string{
		models.CategoryServer: {
			"server", "tomcat", "nginx", "apache", "iis", "httpd", "port", "service", "restart",
			"shutdown", "startup", "load", "balancer", "reverse", "proxy", "websocket", "ssh",
			"dns", "ntp", "smtp", "ftp", "virtual", "host", "container", "docker", "kubernetes",
			"vmware", "esxi", "vcenter", "hypervisor",
		},
		models.CategoryDatabase: {
			"database", "mysql", "postgresql", "mongodb", "redis", "oracle", "sql", "server",
			"connection", "timeout", "query", "slow", "db", "replication", "oplog", "tablespace",
			"deadlock", "lock", "transaction", "backup", "restore", "index", "schema", "migration",
			"cassandra", "nosql", "rdbms",
		},
		models.CategoryPerformance: {
			"cpu", "memory", "slow", "performance", "usage", "high", "leak", "bottleneck",
			"throughput", "latency", "response", "time", "garbage", "collection", "gc", "heap",
			"thread", "dump", "profiling", "optimization", "cache", "miss", "hit", "ratio",
			"bandwidth", "saturation", "iostat", "iotop",
		},
		models.CategoryStorage: {
			"disk", "space", "full", "storage", "log", "backup", "cleanup", "raid", "array",
			"degraded", "nfs", "mount", "inode", "filesystem", "lvm", "volume", "san", "nas",
			"object", "bucket", "s3", "glacier", "archive", "retention", "compression", "snapshot",
		},
		models.CategoryNetwork: {
			"network", "latency", "ssl", "certificate", "https", "ping", "timeout", "firewall",
			"port", "blocking", "dns", "propagation", "vpn", "cdn", "cache", "packet", "loss",
			"interface", "bandwidth", "throughput", "load", "balancer", "termination", "ddos",
			"traceroute", "qos", "mtu",
		},
		models.CategoryApplication: {
			"application", "error", "500", "crash", "exception", "response", "slow", "session",
			"cookie", "upload", "file", "api", "rate", "limiting", "throttling", "integration",
			"third-party", "message", "queue", "backlog", "circuit", "breaker", "fallback",
			"microservice", "monolithic", "rest", "soap",
		},
		models.CategorySecurity: {
			"security", "brute", "force", "attack", "malware", "virus", "sql", "injection",
			"xss", "cross-site", "scripting", "privilege", "escalation", "ddos", "denial",
			"service", "authentication", "authorization", "encryption", "vulnerability", "patch",
			"firewall", "waf", "intrusion", "detection",
		},
	}

	stopWords := []string{
		"the", "is", "on", "in", "at", "and", "or", "a", "an", "to", "for", "of", "with", "by", "as",
		"from", "that", "this", "it", "be", "are", "was", "were", "have", "has", "had", "do", "does",
		"did", "but", "not", "what", "which", "how", "why", "when", "where", "who", "whom", "whose",
	}

	e := &Engine{
		vocabulary: make(map[string]map[string]bool, len(vocabulary)),
		stopWords:  make(map[string]bool, len(stopWords)),
		patterns: []namedPattern{
			{"port", regexp.MustCompile(`port\s+(\d{1,5})`)},
			{"percentage", regexp.MustCompile(`(\d{1,3})\s*%`)},
			{"error_code", regexp.MustCompile(`\b(\d{3})\b`)},
			{"service", regexp.MustCompile(`\b(tomcat|nginx|mysql|postgresql|mongodb|redis|apache|httpd|iis|java|python|php|docker|kubernetes)\b`)},
			{"path", regexp.MustCompile(`(/var/log|/etc|/home|/opt|/usr|/tmp|/mnt|/backup)`)},
			{"ip_address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)},
			{"memory_size", regexp.MustCompile(`(\d+)\s*(mb|gb|tb)`)},
			{"time_duration", regexp.MustCompile(`(\d+)\s*(seconds|minutes|hours|days|secs|mins|hrs)`)},
			{"version", regexp.MustCompile(`\b(v?\d+\.\d+(?:\.\d+)?)\b`)},
		},
	}

	for category, keywords := range vocabulary {
		set := make(map[string]bool, len(keywords))
		for _, k := range keywords {
			set[k] = true
		}
		e.vocabulary[category] = set
		e.categories = append(e.categories, category)
	}
	// Lexical order makes tie-breaking deterministic.
	sort.Strings(e.categories)

	for _, w := range stopWords {
		e.stopWords[w] = true
	}

	return e
}

// Categories lists the classifier categories in their tie-break order.
func (e *Engine) Categories() []string {
	return append([]string(nil), e.categories...)
}

// Preprocess lowercases the query, extracts named patterns (a substring may
// land under several pattern names), tokenizes, drops stopwords and scores
// the tokens against each category vocabulary.
func (e *Engine) Preprocess(query string) *models.QueryAnalysis {
	lowered := strings.ToLower(query)

	patterns := make(map[string][]string)
	for _, p := range e.patterns {
		var found []string
		for _, m := range p.re.FindAllStringSubmatch(lowered, -1) {
			found = append(found, extractMatch(m))
		}
		if len(found) > 0 {
			patterns[p.name] = found
		}
	}

	var tokens []string
	for _, t := range tokenRe.FindAllString(lowered, -1) {
		if !e.stopWords[t] {
			tokens = append(tokens, t)
		}
	}

	categoryScores := make(map[string]float64)
	matchedKeywords := make(map[string][]string)
	for _, category := range e.categories {
		set := e.vocabulary[category]
		for _, token := range tokens {
			if set[token] {
				categoryScores[category]++
				matchedKeywords[category] = append(matchedKeywords[category], token)
			}
		}
	}

	primary := models.CategoryUnknown
	best := 0.0
	for _, category := range e.categories {
		if score := categoryScores[category]; score > best {
			best = score
			primary = category
		}
	}

	return &models.QueryAnalysis{
		Original:        query,
		Tokens:          tokens,
		Patterns:        patterns,
		CategoryScores:  categoryScores,
		PrimaryCategory: primary,
		MatchedKeywords: matchedKeywords,
	}
}

// extractMatch flattens one regex match to a single string: the sole capture
// group where there is one, the concatenated groups where there are several,
// the full match otherwise.
func extractMatch(m []string) string {
	switch len(m) {
	case 1:
		return m[0]
	case 2:
		return m[1]
	default:
		return strings.Join(m[1:], "")
	}
}

// KeyTerms filters tokens down to those present in any category vocabulary.
// Duplicate query tokens are preserved.
func (e *Engine) KeyTerms(tokens []string) []string {
	var keyTerms []string
	for _, token := range tokens {
		for _, category := range e.categories {
			if e.vocabulary[category][token] {
				keyTerms = append(keyTerms, token)
				break
			}
		}
	}
	return keyTerms
}

// Similarity is Jaccard overlap between the token set and the keyword set,
// boosted by 0.1 per query token present in the keywords, capped at 1.0.
func (e *Engine) Similarity(queryTokens, incidentKeywords []string) float64 {
	if len(queryTokens) == 0 || len(incidentKeywords) == 0 {
		return 0.0
	}

	querySet := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		querySet[t] = true
	}
	keywordSet := make(map[string]bool, len(incidentKeywords))
	for _, k := range incidentKeywords {
		keywordSet[k] = true
	}

	intersection := 0
	for t := range querySet {
		if keywordSet[t] {
			intersection++
		}
	}
	union := len(querySet) + len(keywordSet) - intersection
	if union == 0 {
		return 0.0
	}
	similarity := float64(intersection) / float64(union)

	exactMatches := 0
	for _, t := range queryTokens {
		if keywordSet[t] {
			exactMatches++
		}
	}
	similarity += float64(exactMatches) * 0.1

	if similarity > 1.0 {
		return 1.0
	}
	return similarity
}
