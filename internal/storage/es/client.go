package es

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

const (
	DefaultIndexName = "checks"
	maxRetries       = 3
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) Validate() error {
	if len(c.Addresses) == 0 {
		return errors.New("elasticsearch addresses are required")
	}
	if c.IndexName == "" {
		return errors.New("elasticsearch index name is required")
	}
	if (c.Username == "") != (c.Password == "") {
		return errors.New("elasticsearch username and password must be set together")
	}
	return nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return elasticsearch.NewTypedClient(elasticsearch.Config{
		Addresses:     config.Addresses,
		Username:      config.Username,
		Password:      config.Password,
		MaxRetries:    maxRetries,
		RetryOnStatus: []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests},
	})
}
