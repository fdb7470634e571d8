package kb

import "github.com/ruby4mag/supportbot-go-backend/internal/models"

// SeedIncidents returns the bundled knowledge base: known production
// incidents across all seven categories with resolution runbooks and, where
// safe automation exists, a remediation script.
func SeedIncidents() []models.DbIncident {
	return []models.DbIncident{
		{
			IncidentID:  "SRV001",
			Title:       "Tomcat Server Not Responding",
			Description: "Apache Tomcat service is down and not responding on port 8080",
			Category:    models.CategoryServer,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"SSH to the server",
				"Check service status: sudo systemctl status tomcat9",
				"Restart service: sudo systemctl restart tomcat9",
				"Verify: curl http://localhost:8080",
				"Check logs: tail -100 /var/log/tomcat9/catalina.out",
				"Check disk space: df -h",
				"Verify Java process: ps aux | grep java",
				"Check port conflicts: netstat -tulpn | grep 8080",
			},
			ResolutionTime:   15,
			AutomationScript: "sudo systemctl restart tomcat9",
			Keywords:         []string{"tomcat", "server", "not responding", "port 8080", "service down", "apache", "web server", "java", "startup"},
		},
		{
			IncidentID:  "SRV002",
			Title:       "Nginx 502 Bad Gateway Error",
			Description: "Nginx web server returning 502 Bad Gateway errors to all requests",
			Category:    models.CategoryServer,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check nginx status: systemctl status nginx",
				"Test configuration: nginx -t",
				"Restart nginx: systemctl restart nginx",
				"Check error logs: tail -f /var/log/nginx/error.log",
				"Verify backend services are running",
				"Review upstream server configuration",
				"Increase proxy timeout settings",
			},
			ResolutionTime:   20,
			AutomationScript: "systemctl restart nginx",
			Keywords:         []string{"nginx", "502", "bad gateway", "web server", "service", "restart", "proxy", "upstream"},
		},
		{
			IncidentID:  "SRV003",
			Title:       "Apache HTTPD Service Crash",
			Description: "Apache HTTP server crashing repeatedly with segmentation fault",
			Category:    models.CategoryServer,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check crash logs: tail -100 /var/log/apache2/error.log",
				"Check system logs: dmesg | grep apache",
				"Verify module compatibility: apache2ctl -M",
				"Disable recently added modules",
				"Update Apache to latest stable version",
				"Monitor with: apache2ctl fullstatus",
			},
			ResolutionTime:   45,
			AutomationScript: "systemctl stop apache2 && systemctl start apache2",
			Keywords:         []string{"apache", "httpd", "crash", "segmentation fault", "core dumped", "service", "restart"},
		},
		{
			IncidentID:  "SRV006",
			Title:       "SSH Connection Refused",
			Description: "Cannot SSH into production server - Connection refused",
			Category:    models.CategoryServer,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check if SSH service is running",
				"Verify port 22 is listening",
				"Check firewall rules",
				"Review SSH config",
				"Verify disk space on /var/log",
				"Restart SSH service",
			},
			ResolutionTime:   20,
			AutomationScript: "systemctl restart sshd && ufw allow 22/tcp",
			Keywords:         []string{"ssh", "connection refused", "port 22", "sshd", "firewall", "access denied"},
		},
		{
			IncidentID:  "SRV013",
			Title:       "Docker Container Crash",
			Description: "Docker containers crashing unexpectedly",
			Category:    models.CategoryServer,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check docker logs: docker logs <container>",
				"Check container status: docker ps -a",
				"Check resource limits",
				"Check for OOM killer",
				"Restart container",
				"Check host system resources",
			},
			ResolutionTime:   25,
			AutomationScript: "docker restart <container_name>",
			Keywords:         []string{"docker", "container", "crash", "oom", "restart", "kubernetes"},
		},
		{
			IncidentID:  "SRV014",
			Title:       "Kubernetes Pod CrashLoopBackOff",
			Description: "Kubernetes pods stuck in CrashLoopBackOff state",
			Category:    models.CategoryServer,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check pod logs: kubectl logs <pod>",
				"Check pod status: kubectl describe pod <pod>",
				"Check resource requests/limits",
				"Verify image availability",
				"Review liveness/readiness probes",
				"Restart deployment",
			},
			ResolutionTime:   35,
			AutomationScript: "kubectl delete pod <pod_name>",
			Keywords:         []string{"kubernetes", "pod", "crashloopbackoff", "k8s", "container", "crash"},
		},
		{
			IncidentID:  "DB001",
			Title:       "MySQL Connection Timeout",
			Description: "Database connection timeout errors in application logs",
			Category:    models.CategoryDatabase,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check MySQL status: systemctl status mysql",
				"Check active connections",
				"Increase timeout settings",
				"Check max_connections",
				"Monitor slow queries",
				"Optimize queries causing locks",
				"Restart MySQL if necessary",
			},
			ResolutionTime:   25,
			AutomationScript: "mysql -e 'SET GLOBAL max_connections=500; SET GLOBAL wait_timeout=300;'",
			Keywords:         []string{"mysql", "database", "connection", "timeout", "error", "slow", "query"},
		},
		{
			IncidentID:  "DB002",
			Title:       "Database Disk Space Full",
			Description: "MySQL database running out of disk space",
			Category:    models.CategoryDatabase,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check disk usage",
				"Find largest tables",
				"Check binary logs",
				"Purge old binary logs",
				"Archive historical data",
				"Increase disk space if possible",
			},
			ResolutionTime:   45,
			AutomationScript: "mysql -e 'PURGE BINARY LOGS BEFORE DATE_SUB(NOW(), INTERVAL 3 DAY);'",
			Keywords:         []string{"database", "disk", "space", "full", "mysql", "storage", "out of space"},
		},
		{
			IncidentID:  "DB003",
			Title:       "PostgreSQL High CPU Usage",
			Description: "PostgreSQL processes consuming excessive CPU",
			Category:    models.CategoryDatabase,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Identify top queries",
				"Check for long-running transactions",
				"Analyze query plans with EXPLAIN",
				"Check for missing indexes",
				"Kill problematic queries",
				"Review vacuum settings",
			},
			ResolutionTime:   35,
			AutomationScript: "psql -c 'SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE query_start < NOW() - INTERVAL 10 minutes AND state=active;'",
			Keywords:         []string{"postgresql", "postgres", "cpu", "high", "usage", "query", "slow"},
		},
		{
			IncidentID:  "DB005",
			Title:       "Redis Memory Exhaustion",
			Description: "Redis hitting max memory limit, causing evictions",
			Category:    models.CategoryDatabase,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check memory usage",
				"Identify large keys",
				"Check eviction policy",
				"Consider increasing maxmemory",
				"Monitor client connections",
			},
			ResolutionTime:   30,
			AutomationScript: "redis-cli CONFIG SET maxmemory 2gb && redis-cli CONFIG SET maxmemory-policy allkeys-lru",
			Keywords:         []string{"redis", "memory", "maxmemory", "eviction", "cache", "keys"},
		},
		{
			IncidentID:  "DB009",
			Title:       "Database Backup Failure",
			Description: "Scheduled database backup job failing",
			Category:    models.CategoryDatabase,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Check backup script logs",
				"Verify disk space in backup location",
				"Check database connectivity",
				"Verify backup user permissions",
				"Test backup manually",
				"Test restore procedure",
			},
			ResolutionTime:   35,
			AutomationScript: "mysqldump -u root -p$PASSWORD --all-databases | gzip > /backup/mysql_$(date +%Y%m%d).sql.gz",
			Keywords:         []string{"backup", "database", "failed", "mysqldump", "pg_dump", "retention"},
		},
		{
			IncidentID:  "PERF001",
			Title:       "High CPU Usage on Java Application",
			Description: "Java process consuming 95%+ CPU on production server",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Identify process",
				"Get thread dump",
				"Analyze CPU usage with profiler",
				"Check for infinite loops or recursive calls",
				"Review garbage collection",
				"Restart service if necessary",
			},
			ResolutionTime:   40,
			AutomationScript: "jstack $(pgrep -f tomcat) > /tmp/thread_dump_$(date +%s).txt",
			Keywords:         []string{"cpu", "high", "usage", "performance", "slow", "java", "process"},
		},
		{
			IncidentID:  "PERF002",
			Title:       "Memory Leak in JVM",
			Description: "JVM heap memory keeps increasing until OutOfMemoryError",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Monitor memory",
				"Generate heap dump",
				"Analyze with Eclipse MAT or VisualVM",
				"Check for static collections",
				"Check for unclosed resources",
				"Monitor GC activity",
			},
			ResolutionTime:   60,
			AutomationScript: "jmap -dump:live,format=b,file=/tmp/heap_$(date +%s).hprof $(pgrep -f java)",
			Keywords:         []string{"memory", "leak", "out of memory", "heap", "gc", "garbage collection"},
		},
		{
			IncidentID:  "PERF003",
			Title:       "Slow Database Queries",
			Description: "Application slow due to inefficient database queries",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Enable slow query log",
				"Analyze EXPLAIN plans for slow queries",
				"Check for missing indexes",
				"Check for full table scans",
				"Implement query caching",
			},
			ResolutionTime:   50,
			AutomationScript: "mysql -e 'SET GLOBAL slow_query_log = 1; SET GLOBAL long_query_time = 2;'",
			Keywords:         []string{"slow", "query", "database", "index", "explain", "optimization"},
		},
		{
			IncidentID:  "PERF008",
			Title:       "Cache Miss Rate High",
			Description: "High cache miss rate reducing performance benefits",
			Category:    models.CategoryPerformance,
			Severity:    models.SeverityLow,
			ResolutionSteps: []string{
				"Monitor cache statistics",
				"Review cache key design",
				"Check cache size limits",
				"Implement cache warming",
				"Review cache eviction policies",
			},
			ResolutionTime:   35,
			AutomationScript: "redis-cli info stats | grep -E '(keyspace_misses|keyspace_hits)'",
			Keywords:         []string{"cache", "miss", "hit", "ratio", "redis", "memcached"},
		},
		{
			IncidentID:  "STOR001",
			Title:       "Disk Space Full on /var/log",
			Description: "Log directory consuming all available disk space",
			Category:    models.CategoryStorage,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Check disk usage",
				"Find large files",
				"Clean old log files",
				"Configure logrotate",
				"Implement log compression",
				"Monitor log growth",
			},
			ResolutionTime:   20,
			AutomationScript: "find /var/log -name '*.log' -mtime +7 -delete && systemctl restart rsyslog",
			Keywords:         []string{"disk", "space", "full", "/var/log", "logs", "storage", "cleanup"},
		},
		{
			IncidentID:  "STOR004",
			Title:       "RAID Array Degraded",
			Description: "RAID array reporting degraded state",
			Category:    models.CategoryStorage,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check RAID status",
				"Identify failed disks",
				"Check SMART status of disks",
				"Replace failed disk physically",
				"Monitor rebuild progress",
				"Verify backup availability",
			},
			ResolutionTime:   120,
			AutomationScript: "mdadm --manage /dev/md0 --add /dev/sdc && echo check > /sys/block/md0/md/sync_action",
			Keywords:         []string{"raid", "degraded", "mdadm", "array", "disk", "failed"},
		},
		{
			IncidentID:  "STOR005",
			Title:       "NFS Mount Unavailable",
			Description: "NFS shares not mounting or becoming stale",
			Category:    models.CategoryStorage,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check NFS server",
				"Verify network connectivity",
				"Check mount options in /etc/fstab",
				"Check for stale file handles",
				"Restart NFS services",
			},
			ResolutionTime:   35,
			AutomationScript: "umount -f /mnt/nfs && mount -a",
			Keywords:         []string{"nfs", "mount", "stale", "file handle", "export", "network"},
		},
		{
			IncidentID:  "NET001",
			Title:       "High Network Latency Between Services",
			Description: "High network latency between application and database servers",
			Category:    models.CategoryNetwork,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Ping test with timestamp",
				"Traceroute analysis",
				"Check for network congestion",
				"Verify MTU settings",
				"Review routing paths",
			},
			ResolutionTime:   40,
			AutomationScript: "ping -c 10 -i 0.2 <target> | tail -2",
			Keywords:         []string{"network", "latency", "slow", "ping", "timeout", "connection"},
		},
		{
			IncidentID:  "NET002",
			Title:       "SSL Certificate Expired",
			Description: "Website showing SSL certificate expired error",
			Category:    models.CategoryNetwork,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check certificate expiry",
				"Renew certificate with CA",
				"Install new certificate on server",
				"Update webserver configuration",
				"Restart webserver services",
				"Test SSL configuration",
			},
			ResolutionTime:   75,
			AutomationScript: "certbot renew --nginx && systemctl reload nginx",
			Keywords:         []string{"ssl", "certificate", "expired", "https", "security", "tls"},
		},
		{
			IncidentID:  "NET003",
			Title:       "Firewall Blocking Required Ports",
			Description: "Application connectivity issues due to firewall rules",
			Category:    models.CategoryNetwork,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check current firewall rules",
				"Test connectivity",
				"Check for recent rule changes",
				"Verify application port requirements",
				"Review network ACLs",
			},
			ResolutionTime:   35,
			AutomationScript: "ufw allow 5432/tcp && ufw reload",
			Keywords:         []string{"firewall", "blocking", "port", "iptables", "ufw", "security group"},
		},
		{
			IncidentID:  "APP001",
			Title:       "Application 500 Internal Server Error",
			Description: "Application throwing 500 Internal Server Error",
			Category:    models.CategoryApplication,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Check application error logs",
				"Review recent deployments/changes",
				"Check database connectivity",
				"Verify configuration files",
				"Check file permissions",
				"Verify external service connectivity",
			},
			ResolutionTime:   45,
			AutomationScript: "tail -100 /var/log/tomcat9/catalina.out | grep -A 10 -B 5 'ERROR'",
			Keywords:         []string{"500", "error", "internal server", "application", "crash", "exception"},
		},
		{
			IncidentID:  "APP002",
			Title:       "Application Slow Response Times",
			Description: "Application responding slowly to user requests",
			Category:    models.CategoryApplication,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Check response times in application logs",
				"Monitor database query performance",
				"Check external API response times",
				"Check thread pool utilization",
				"Monitor garbage collection",
			},
			ResolutionTime:   55,
			AutomationScript: "curl -o /dev/null -s -w 'Total: %{time_total}s\\n' http://localhost:8080",
			Keywords:         []string{"slow", "response", "application", "performance", "timeout", "lag"},
		},
		{
			IncidentID:  "APP005",
			Title:       "API Rate Limiting Issues",
			Description: "API calls being rate limited or throttled",
			Category:    models.CategoryApplication,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Check rate limit configuration",
				"Identify client making excessive calls",
				"Check for client-side retry loops",
				"Implement exponential backoff",
				"Review API key rotation",
			},
			ResolutionTime:   30,
			AutomationScript: "redis-cli SETEX api_limit:client_ip 60 100",
			Keywords:         []string{"api", "rate limiting", "throttling", "429", "too many requests"},
		},
		{
			IncidentID:  "APP009",
			Title:       "Message Queue Backlog",
			Description: "Message queue accumulating messages without processing",
			Category:    models.CategoryApplication,
			Severity:    models.SeverityMedium,
			ResolutionSteps: []string{
				"Check queue depth and consumer lag",
				"Verify consumer applications are running",
				"Check for consumer errors/failures",
				"Scale up consumers if needed",
				"Check for network connectivity issues",
			},
			ResolutionTime:   40,
			AutomationScript: "rabbitmqctl list_queues name messages messages_ready messages_unacknowledged",
			Keywords:         []string{"message queue", "rabbitmq", "kafka", "backlog", "consumer", "lag"},
		},
		{
			IncidentID:  "SEC001",
			Title:       "Brute Force Attack Detected",
			Description: "Multiple failed login attempts from same IP addresses",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityHigh,
			ResolutionSteps: []string{
				"Check authentication logs",
				"Identify attacking IP addresses",
				"Implement IP blocking",
				"Enable fail2ban or similar",
				"Review account lockout policies",
				"Enable two-factor authentication",
			},
			ResolutionTime:   35,
			AutomationScript: "fail2ban-client set sshd banip <IP>",
			Keywords:         []string{"brute force", "attack", "login", "failed", "authentication", "security"},
		},
		{
			IncidentID:  "SEC002",
			Title:       "Malware/Virus Detection",
			Description: "Antivirus software detecting malware on server",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Isolate affected server from network",
				"Run full system scan",
				"Quarantine or remove infected files",
				"Check for rootkits",
				"Change all passwords",
				"Check for data exfiltration",
			},
			ResolutionTime:   120,
			AutomationScript: "clamscan -r --remove /var/www",
			Keywords:         []string{"malware", "virus", "infection", "security", "scan", "antivirus"},
		},
		{
			IncidentID:  "SEC006",
			Title:       "DDoS Attack in Progress",
			Description: "Distributed Denial of Service attack overwhelming servers",
			Category:    models.CategorySecurity,
			Severity:    models.SeverityCritical,
			ResolutionSteps: []string{
				"Contact ISP/DDoS protection provider",
				"Enable DDoS mitigation services",
				"Implement rate limiting",
				"Block attacking IP ranges",
				"Use CDN for caching",
				"Monitor traffic patterns",
			},
			ResolutionTime:   90,
			AutomationScript: "iptables -A INPUT -p tcp --dport 80 -m limit --limit 100/minute --limit-burst 200 -j ACCEPT",
			Keywords:         []string{"ddos", "attack", "denial of service", "traffic", "flood", "security"},
		},
	}
}
