package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

var resolver = net.DefaultResolver

// IsEmailDomainValid aceita o e-mail se o domínio tiver MX ou, na falta,
// algum endereço IP.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}

	domain := strings.TrimSuffix(email[at+1:], ".")
	if domain == "" || !strings.Contains(domain, ".") {
		return "", false
	}
	return domain, true
}
