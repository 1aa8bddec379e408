package alpaca

import (
	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

type alpacaApi interface {
	GetOrders(req alpaca.GetOrdersRequest) ([]alpaca.Order, error)
}

func newAlpacaApi(apiKey string, secret string, baseUrl string) alpacaApi {
	return alpaca.NewClient(alpaca.ClientOpts{
		BaseURL:   baseUrl,
		APIKey:    apiKey,
		APISecret: secret,
	})
}
