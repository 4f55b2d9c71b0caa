package web

import "github.com/batiknusa/storefront/internal/shipping/internal/domain"

type OptionsReq struct {
	DestinationPostalCode string `json:"destinationPostalCode"`
}

type Option struct {
	CourierCode string `json:"courierCode"`
	CourierName string `json:"courierName"`
	ServiceCode string `json:"serviceCode"`
	ServiceName string `json:"serviceName"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       int64  `json:"price"`
}

type OptionsResp struct {
	Options []Option `json:"options"`
}

type SelectReq struct {
	CourierCode string `json:"courierCode"`
	CourierName string `json:"courierName"`
	ServiceCode string `json:"serviceCode"`
	ServiceName string `json:"serviceName"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
}

func newOption(src domain.Option) Option {
	return Option{
		CourierCode: src.CourierCode,
		CourierName: src.CourierName,
		ServiceCode: src.ServiceCode,
		ServiceName: src.ServiceName,
		Description: src.Description,
		Duration:    src.Duration,
		Price:       src.Price,
	}
}
