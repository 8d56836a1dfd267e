package server

import (
	"fmt"
	"net"
	"net/http"
)

// StartHTTP blocks serving handler on host:port.
func StartHTTP(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return http.ListenAndServe(addr, handler)
}
