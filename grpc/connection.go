package grpc

import (
	"crypto/tls"
	"crypto/x509"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// GetGrpcConnection creates a client connection to a node. Endpoints on port 443 use TLS with the
// system root certificates, everything else is plaintext.
func GetGrpcConnection(grpcUri string) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		transportCredentials(grpcUri),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
	}

	return grpc.NewClient(
		grpcUri,
		opts...,
	)
}

func transportCredentials(grpcUri string) grpc.DialOption {
	if !IsTLSEndpoint(grpcUri) {
		return grpc.WithTransportCredentials(insecure.NewCredentials())
	}

	certPool, err := x509.SystemCertPool()
	if err != nil {
		certPool = x509.NewCertPool()
	}

	creds := credentials.NewTLS(&tls.Config{
		RootCAs:    certPool,
		MinVersion: tls.VersionTLS12,
	})
	return grpc.WithTransportCredentials(creds)
}

// IsTLSEndpoint reports whether a gRPC uri should be dialed over TLS.
func IsTLSEndpoint(grpcUri string) bool {
	return strings.HasSuffix(grpcUri, "443")
}
