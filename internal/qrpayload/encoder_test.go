package qrpayload

import (
	"net/url"
	"testing"

	"github.com/matu-sky/qrcode1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://qr.example.com"

func newTestEncoder() *Encoder {
	return NewEncoder(testBaseURL)
}

// ─────────────────────────────────────────────
// local protocol strategies
// ─────────────────────────────────────────────

// TestEncode_URLIdentity verifies that the url type passes the input
// through untouched.
func TestEncode_URLIdentity(t *testing.T) {
	form := models.FormState{Type: models.URL, URL: &models.URLForm{Value: "https://example.com/path?q=1"}}

	got, err := newTestEncoder().Encode(form, models.TemplateMemo)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path?q=1", got)
}

// TestEncode_Wifi verifies the WIFI: string layout and field escaping.
func TestEncode_Wifi(t *testing.T) {
	form := models.FormState{Type: models.Wifi, Wifi: &models.WifiCredential{
		SSID:       `cafe;wifi`,
		Password:   `pass"word`,
		Encryption: models.WifiWEP,
	}}

	got, err := newTestEncoder().Encode(form, models.TemplateMemo)

	require.NoError(t, err)
	assert.Equal(t, `WIFI:T:WEP;S:cafe\;wifi;P:pass\"word;;`, got)
}

// TestEncode_WifiDefaultsToWPA verifies that an unset encryption mode is
// encoded as WPA.
func TestEncode_WifiDefaultsToWPA(t *testing.T) {
	form := models.FormState{Type: models.Wifi, Wifi: &models.WifiCredential{SSID: "MyWiFi"}}

	got, err := newTestEncoder().Encode(form, models.TemplateMemo)

	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:MyWiFi;P:;;", got)
}

// TestEncode_SMS verifies the SMSTO: URI, including the empty-message form.
func TestEncode_SMS(t *testing.T) {
	enc := newTestEncoder()

	got, err := enc.Encode(models.FormState{
		Type: models.SMS,
		SMS:  &models.SMSMessage{Phone: "010-1234-5678", Message: "예약 문의드립니다"},
	}, models.TemplateMemo)
	require.NoError(t, err)
	assert.Equal(t, "SMSTO:010-1234-5678:예약 문의드립니다", got)

	got, err = enc.Encode(models.FormState{
		Type: models.SMS,
		SMS:  &models.SMSMessage{Phone: "010-1234-5678"},
	}, models.TemplateMemo)
	require.NoError(t, err)
	assert.Equal(t, "SMSTO:010-1234-5678:", got)
}

// TestEncode_VCardEmptySuppressed verifies that an all-empty contact card
// yields the empty payload, not an error and not an empty envelope.
func TestEncode_VCardEmptySuppressed(t *testing.T) {
	form := models.FormState{Type: models.VCard, Contact: &models.ContactCard{}}

	got, err := newTestEncoder().Encode(form, models.TemplateReceipt)

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

// ─────────────────────────────────────────────
// deep link strategies
// ─────────────────────────────────────────────

// TestEncode_TextLink verifies the deep link layout and parameter order for
// the text type.
func TestEncode_TextLink(t *testing.T) {
	form := models.FormState{Type: models.Text, Text: &models.TextForm{Value: "어서오세요"}}

	got, err := newTestEncoder().Encode(form, models.TemplateStickyNote)

	require.NoError(t, err)
	assert.Equal(t,
		testBaseURL+"/display?type=text&template=sticky-note&text="+url.QueryEscape("어서오세요"),
		got)
}

// TestEncode_PaymentLink_OptionalOmitted verifies that optional payment
// parameters are omitted entirely when empty.
func TestEncode_PaymentLink_OptionalOmitted(t *testing.T) {
	form := models.FormState{Type: models.Payment, Payment: &models.PaymentInfo{
		Bank:          "신한은행",
		AccountNumber: "110-123-456789",
	}}

	got, err := newTestEncoder().Encode(form, models.TemplateBankInfoCard)

	require.NoError(t, err)
	assert.Equal(t,
		testBaseURL+"/display?type=payment&template=bank-info-card&bank="+url.QueryEscape("신한은행")+"&accountNumber=110-123-456789",
		got)
	assert.NotContains(t, got, "accountHolder=")
	assert.NotContains(t, got, "amount=")
	assert.NotContains(t, got, "bg=")
}

// TestEncode_PaymentRoundTrip verifies that a generated payment link parses
// back to the original field values.
func TestEncode_PaymentRoundTrip(t *testing.T) {
	payment := models.PaymentInfo{
		Bank:          "신한은행",
		AccountNumber: "110-123-456789",
		AccountHolder: "홍길동",
		Amount:        "50000",
		BackgroundURL: "https://img.example.com/bg.jpg",
	}
	form := models.FormState{Type: models.Payment, Payment: &payment}

	link, err := newTestEncoder().Encode(form, models.TemplateReceipt)
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "/display", parsed.Path)

	params := ParseDisplayQuery(parsed.Query())
	assert.Equal(t, models.Payment, params.Type)
	assert.Equal(t, models.TemplateReceipt, params.Template)
	assert.Equal(t, payment, params.Payment)
}

// TestEncode_ReproducibleOutput verifies byte-identical output across calls.
func TestEncode_ReproducibleOutput(t *testing.T) {
	form := models.FormState{Type: models.Payment, Payment: &models.PaymentInfo{
		Bank:          "국민은행",
		AccountNumber: "123-45-6789",
		AccountHolder: "김철수",
	}}
	enc := newTestEncoder()

	first, err := enc.Encode(form, models.TemplateMemo)
	require.NoError(t, err)
	second, err := enc.Encode(form, models.TemplateMemo)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestBuildContactLink verifies the contact deep link emits only non-empty
// fields in schema order.
func TestBuildContactLink(t *testing.T) {
	card := models.ContactCard{Name: "홍길동", Email: "hong@example.com"}

	got := newTestEncoder().BuildContactLink(card)

	assert.Equal(t,
		testBaseURL+"/display?type=vcard&name="+url.QueryEscape("홍길동")+"&email=hong%40example.com",
		got)
	assert.Equal(t, "", newTestEncoder().BuildContactLink(models.ContactCard{}))
}

// ─────────────────────────────────────────────
// menu two-phase path
// ─────────────────────────────────────────────

// TestEncode_MenuRequiresRecordID verifies that the encoder refuses the
// single-shot menu path.
func TestEncode_MenuRequiresRecordID(t *testing.T) {
	form := models.FormState{Type: models.Menu, Menu: &models.MenuDocument{ShopName: "길동커피"}}

	_, err := newTestEncoder().Encode(form, models.TemplateMemo)

	assert.ErrorIs(t, err, ErrMenuRecordRequired)
}

// TestBuildMenuLink verifies the persisted-record link layout.
func TestBuildMenuLink(t *testing.T) {
	got := newTestEncoder().BuildMenuLink("2b1f8a34-7c1d-4f1e-9a90-2f2f4f0a1b2c")

	assert.Equal(t, testBaseURL+"/display?type=menu&id=2b1f8a34-7c1d-4f1e-9a90-2f2f4f0a1b2c", got)
}

// TestEncode_InsufficientInputSuppressed verifies the neutral outcome for
// insufficient input across deep-link types.
func TestEncode_InsufficientInputSuppressed(t *testing.T) {
	enc := newTestEncoder()

	got, err := enc.Encode(models.FormState{Type: models.Text, Text: &models.TextForm{}}, models.TemplateMemo)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = enc.Encode(models.FormState{Type: models.Payment, Payment: &models.PaymentInfo{}}, models.TemplateMemo)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
