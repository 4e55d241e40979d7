package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const dnsLookupTimeout = 3 * time.Second

// IsEmailDomainValid checa se o domínio do e-mail resolve de verdade (MX,
// ou A/AAAA como fallback para domínios que recebem direto no host).
// Consulta de DNS é lenta no pior caso; o timeout limita o estrago.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " @") || !strings.Contains(domain, ".") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, dnsLookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
