package handlers

// Domain is the cookie domain for session tokens, set from config at startup.
var Domain string

func Configure(domain string) {
	Domain = domain
}
