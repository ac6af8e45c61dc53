package scan

// generated by tools/update-ports.go from
// https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownPorts = map[int]string{
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "domain",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "sunrpc",
	119:   "nntp",
	123:   "ntp",
	135:   "epmap",
	139:   "netbios-ssn",
	143:   "imap",
	179:   "bgp",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "submissions",
	514:   "shell",
	515:   "printer",
	543:   "klogin",
	548:   "afpovertcp",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	902:   "ideafarm-door",
	990:   "ftps",
	993:   "imaps",
	995:   "pop3s",
	1025:  "blackjack",
	1080:  "socks",
	1194:  "openvpn",
	1433:  "ms-sql-s",
	1521:  "ncube-lm",
	1723:  "pptp",
	2049:  "nfs",
	2375:  "docker",
	2376:  "docker-s",
	3000:  "hbci",
	3128:  "ndl-aas",
	3268:  "msft-gc",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5060:  "sip",
	5222:  "xmpp-client",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "rfb",
	5984:  "couchdb",
	6379:  "redis",
	6667:  "ircd",
	8000:  "irdmi",
	8080:  "http-alt",
	8443:  "pcsync-https",
	8888:  "ddi-tcp-1",
	9000:  "cslistener",
	9090:  "websm",
	9200:  "wap-wsp",
	11211: "memcache",
	27017: "mongodb",
}
