package main

import (
	"net"
	"net/http"
	"strings"
	"sync"
)

// defaultProxyCIDRs covers the private and loopback ranges where our own
// reverse proxies live. We only trust forwarding headers when the TCP peer
// belongs to one of these networks or to a range from TRUSTED_PROXIES.
var defaultProxyCIDRs = []string{
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"::1/128",
	"fc00::/7",
}

var (
	trustedProxyNets []*net.IPNet
	trustedProxyOnce sync.Once
)

func loadTrustedProxyNets() {
	cidrs := append(defaultProxyCIDRs, s.TrustedProxies...)
	trustedProxyNets = make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, ipnet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn().Str("cidr", cidr).Err(err).Msg("failed to parse trusted proxy CIDR")
			continue
		}
		trustedProxyNets = append(trustedProxyNets, ipnet)
	}
}

func actualIP(r *http.Request) string {
	peerIP := extractPeerIP(r.RemoteAddr)
	if peerIP == nil {
		return r.RemoteAddr
	}

	if isTrustedProxy(peerIP) {
		if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
			if ip := net.ParseIP(real); ip != nil {
				return ip.String()
			}
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// RFC 7239: the left-most address is the original caller.
			client := strings.TrimSpace(strings.Split(xff, ",")[0])
			if ip := net.ParseIP(client); ip != nil {
				return ip.String()
			}
		}
	}

	return peerIP.String()
}

func extractPeerIP(remoteAddr string) net.IP {
	if remoteAddr == "" {
		return nil
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err == nil {
		return net.ParseIP(host)
	}
	// no port component, try direct parsing
	return net.ParseIP(remoteAddr)
}

func isTrustedProxy(ip net.IP) bool {
	if ip == nil {
		return false
	}

	trustedProxyOnce.Do(loadTrustedProxyNets)
	for _, cidr := range trustedProxyNets {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}
