package testutil

import (
	"net"
	"net/http"
	"net/url"
)

// timeoutError is a net.Error that reports a timeout, like an expired client deadline.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// DNSFailure mimics the error http.Client returns when the host cannot be resolved.
func DNSFailure(host string) error {
	return &url.Error{
		Op:  http.MethodGet,
		URL: "https://" + host,
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}},
	}
}

// TimeoutFailure mimics an http.Client timeout.
func TimeoutFailure(host string) error {
	return &url.Error{Op: http.MethodGet, URL: "https://" + host, Err: timeoutError{}}
}

// ConnectionReset mimics a non-timeout transport failure.
func ConnectionReset(host string) error {
	return &url.Error{
		Op:  http.MethodGet,
		URL: "https://" + host,
		Err: &net.OpError{Op: "read", Net: "tcp", Err: &net.AddrError{Err: "connection reset by peer", Addr: host}},
	}
}
