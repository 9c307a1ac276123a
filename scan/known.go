package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
// regenerate with tools/update-ports.go

var knownPorts = map[int]PortInfo{
	1:     {"tcpmux", "TCP Port Service Multiplexer"},
	5:     {"rje", "Remote Job Entry"},
	7:     {"echo", "Echo"},
	9:     {"discard", "Discard"},
	11:    {"systat", "Active Users"},
	13:    {"daytime", "Daytime"},
	17:    {"qotd", "Quote of the Day"},
	18:    {"msp", "Message Send Protocol"},
	19:    {"chargen", "Character Generator"},
	20:    {"ftp-data", "File Transfer [Default Data]"},
	21:    {"ftp", "File Transfer [Control]"},
	22:    {"ssh", "The Secure Shell (SSH) Protocol"},
	23:    {"telnet", "Telnet"},
	25:    {"smtp", "Simple Mail Transfer"},
	37:    {"time", "Time"},
	39:    {"rlp", "Resource Location Protocol"},
	42:    {"nameserver", "Host Name Server"},
	43:    {"nicname", "Who Is"},
	49:    {"tacacs", "Login Host Protocol (TACACS)"},
	53:    {"domain", "Domain Name Server"},
	67:    {"bootps", "Bootstrap Protocol Server"},
	68:    {"bootpc", "Bootstrap Protocol Client"},
	69:    {"tftp", "Trivial File Transfer"},
	70:    {"gopher", "Gopher"},
	79:    {"finger", "Finger"},
	80:    {"http", "World Wide Web HTTP"},
	88:    {"kerberos", "Kerberos"},
	101:   {"hostname", "NIC Host Name Server"},
	102:   {"iso-tsap", "ISO-TSAP Class 0"},
	107:   {"rtelnet", "Remote Telnet Service"},
	109:   {"pop2", "Post Office Protocol - Version 2"},
	110:   {"pop3", "Post Office Protocol - Version 3"},
	111:   {"sunrpc", "SUN Remote Procedure Call"},
	113:   {"auth", "Authentication Service"},
	115:   {"sftp", "Simple File Transfer Protocol"},
	117:   {"uucp-path", "UUCP Path Service"},
	119:   {"nntp", "Network News Transfer Protocol"},
	123:   {"ntp", "Network Time Protocol"},
	135:   {"epmap", "DCE endpoint resolution"},
	137:   {"netbios-ns", "NETBIOS Name Service"},
	138:   {"netbios-dgm", "NETBIOS Datagram Service"},
	139:   {"netbios-ssn", "NETBIOS Session Service"},
	143:   {"imap", "Internet Message Access Protocol"},
	161:   {"snmp", "SNMP"},
	162:   {"snmptrap", "SNMPTRAP"},
	163:   {"cmip-man", "CMIP/TCP Manager"},
	164:   {"cmip-agent", "CMIP/TCP Agent"},
	174:   {"mailq", "MAILQ"},
	177:   {"xdmcp", "X Display Manager Control Protocol"},
	178:   {"nextstep", "NextStep Window Server"},
	179:   {"bgp", "Border Gateway Protocol"},
	191:   {"prospero", "Prospero Directory Service"},
	194:   {"irc", "Internet Relay Chat Protocol"},
	199:   {"smux", "SMUX"},
	201:   {"at-rtmp", "AppleTalk Routing Maintenance"},
	209:   {"qmtp", "The Quick Mail Transfer Protocol"},
	210:   {"z39-50", "ANSI Z39.50"},
	213:   {"ipx", "IPX"},
	220:   {"imap3", "Interactive Mail Access Protocol v3"},
	245:   {"link", "LINK"},
	347:   {"fatserv", "Fatmen Server"},
	363:   {"rsvp-tunnel", "RSVP Tunnel"},
	369:   {"rpc2portmap", "rpc2portmap"},
	370:   {"codaauth2", "codaauth2"},
	372:   {"ulistproc", "ListProcessor"},
	389:   {"ldap", "Lightweight Directory Access Protocol"},
	427:   {"svrloc", "Server Location"},
	443:   {"https", "http protocol over TLS/SSL"},
	444:   {"snpp", "Simple Network Paging Protocol"},
	445:   {"microsoft-ds", "Microsoft-DS"},
	464:   {"kpasswd", "kpasswd"},
	465:   {"submissions", "Message Submission over TLS protocol"},
	500:   {"isakmp", "isakmp"},
	512:   {"exec", "remote process execution"},
	513:   {"login", "remote login a la telnet"},
	514:   {"shell", "cmd"},
	515:   {"printer", "spooler"},
	517:   {"talk", "like tenex link"},
	518:   {"ntalk", "ntalk"},
	520:   {"efs", "extended file name server"},
	521:   {"ripng", "ripng"},
	525:   {"timed", "timeserver"},
	526:   {"tempo", "newdate"},
	530:   {"courier", "rpc"},
	531:   {"conference", "chat"},
	532:   {"netnews", "readnews"},
	533:   {"netwall", "for emergency broadcasts"},
	540:   {"uucp", "uucpd"},
	543:   {"klogin", "klogin"},
	544:   {"kshell", "krcmd"},
	546:   {"dhcpv6-client", "DHCPv6 Client"},
	547:   {"dhcpv6-server", "DHCPv6 Server"},
	548:   {"afpovertcp", "AFP over TCP"},
	554:   {"rtsp", "Real Time Streaming Protocol (RTSP)"},
	556:   {"remotefs", "rfs server"},
	563:   {"nntps", "nntp protocol over TLS/SSL"},
	587:   {"submission", "Message Submission"},
	591:   {"http-alt", "FileMaker, Inc. - HTTP Alternate"},
	593:   {"http-rpc-epmap", "HTTP RPC Ep Map"},
	631:   {"ipp", "IPP (Internet Printing Protocol)"},
	636:   {"ldaps", "ldap protocol over TLS/SSL"},
	674:   {"acap", "ACAP"},
	694:   {"ha-cluster", "ha-cluster"},
	749:   {"kerberos-adm", "kerberos administration"},
	873:   {"rsync", "rsync"},
	990:   {"ftps", "ftp protocol, control, over TLS/SSL"},
	992:   {"telnets", "telnet protocol over TLS/SSL"},
	993:   {"imaps", "IMAP over TLS protocol"},
	995:   {"pop3s", "POP3 over TLS protocol"},
	1080:  {"socks", "Socks"},
	1194:  {"openvpn", "OpenVPN"},
	1433:  {"ms-sql-s", "Microsoft-SQL-Server"},
	1434:  {"ms-sql-m", "Microsoft-SQL-Monitor"},
	1521:  {"ncube-lm", "nCube License Manager"},
	1723:  {"pptp", "pptp"},
	1883:  {"mqtt", "Message Queuing Telemetry Transport Protocol"},
	2049:  {"nfs", "Network File System"},
	2181:  {"eforward", "eforward"},
	2375:  {"docker", "Docker REST API (plain text)"},
	2376:  {"docker-s", "Docker REST API (ssl)"},
	3128:  {"ndl-aas", "Active API Server Port"},
	3306:  {"mysql", "MySQL"},
	3389:  {"ms-wbt-server", "MS WBT Server"},
	4369:  {"epmd", "Erlang Port Mapper Daemon"},
	5060:  {"sip", "SIP"},
	5061:  {"sips", "SIP-TLS"},
	5222:  {"xmpp-client", "XMPP Client Connection"},
	5269:  {"xmpp-server", "XMPP Server Connection"},
	5432:  {"postgresql", "PostgreSQL Database"},
	5672:  {"amqp", "AMQP"},
	5900:  {"rfb", "Remote Framebuffer"},
	6379:  {"redis", "An advanced key-value cache and store"},
	6443:  {"sun-sr-https", "Service Registry Default HTTPS Domain"},
	8080:  {"http-alt", "HTTP Alternate (see port 80)"},
	8443:  {"pcsync-https", "PCsync HTTPS"},
	9092:  {"XmlIpcRegSvc", "Xml-Ipc Server Reg"},
	11211: {"memcache", "Memory cache service"},
	27017: {"mongodb", "Mongo database system"},
}
