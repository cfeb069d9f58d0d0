package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid reports whether the address's domain resolves at all:
// MX records first, then a bare host record for domains that receive mail
// on an A/AAAA entry. Lookups are bounded so a slow resolver cannot stall
// registration; a DNS miss or timeout counts as invalid.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var resolver net.Resolver
	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if addrs, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(addrs) > 0 {
		return true
	}
	return false
}
