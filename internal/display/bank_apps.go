package display

import "html/template"

// BankApp is a banking app offered as a remittance shortcut on the
// web-payment presentation. Scheme is the app's deep link URI; it is typed
// template.URL because the custom app schemes would otherwise be filtered
// out by the HTML renderer.
type BankApp struct {
	Name   string
	Logo   string
	Scheme template.URL
}

// BankApps is the fixed shortcut list shown on the web-payment page.
var BankApps = []BankApp{
	{Name: "토스", Logo: "https://logo.clearbit.com/toss.im", Scheme: "supertoss://"},
	{Name: "카카오뱅크", Logo: "https://logo.clearbit.com/kakaobank.com", Scheme: "kakaobank://"},
	{Name: "NH농협", Logo: "https://www.nhbank.com/nh/images/common/logo_nh.png", Scheme: "newnhsmartbanking://"},
	{Name: "IBK기업", Logo: "https://www.ibk.co.kr/img/logo/logo_ibk.png", Scheme: "ibk-one-bank://"},
	{Name: "우리은행", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/1/17/%EC%9A%B0%EB%A6%AC%EC%9D%80%ED%96%89_%EB%A1%9C%EA%B3%A0.svg/2560px-%EC%9A%B0%EB%A6%AC%EC%9D%80%ED%96%89_%EB%A1%9C%EA%B3%A0.svg.png", Scheme: "wooriwon://"},
	{Name: "하나은행", Logo: "https://logo.clearbit.com/hanabank.com", Scheme: "hanawonq://"},
}
