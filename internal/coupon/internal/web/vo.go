package web

type ApplyCouponReq struct {
	Code string `json:"code"`
}

type CouponResp struct {
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discountPercent"`
}
