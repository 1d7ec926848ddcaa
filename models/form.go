package models

// FormState is the discriminated union of all generator form variants.
// Exactly one variant pointer is non-nil and it must match Type.
// Each variant holds only its own fields so that switching tabs cannot
// leak state between content types.
type FormState struct {
	Type ContentType

	URL     *URLForm
	Text    *TextForm
	Contact *ContactCard
	Wifi    *WifiCredential
	SMS     *SMSMessage
	Payment *PaymentInfo
	Menu    *MenuDocument
}

// URLForm holds the single input of the url content type.
type URLForm struct {
	Value string `json:"value"`
}

// TextForm holds the single input of the text content type.
type TextForm struct {
	Value string `json:"value"`
}

// ContactCard holds the nine business card fields.
// All fields are optional individually; a card with every field empty
// produces no payload at all.
type ContactCard struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Org       string `json:"org"`
	Phone     string `json:"phone"`     // mobile
	WorkPhone string `json:"workPhone"` // office line
	Fax       string `json:"fax"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Address   string `json:"address"`
}

// Empty reports whether every field of the card is empty.
func (c ContactCard) Empty() bool {
	return c.Name == "" && c.Title == "" && c.Org == "" &&
		c.Phone == "" && c.WorkPhone == "" && c.Fax == "" &&
		c.Email == "" && c.Website == "" && c.Address == ""
}

// WifiEncryption is the encryption mode embedded in the T: segment of a
// WIFI: configuration string.
type WifiEncryption string

const (
	WifiWPA    WifiEncryption = "WPA"
	WifiWEP    WifiEncryption = "WEP"
	WifiNoPass WifiEncryption = "nopass"
)

// WifiCredential holds the Wi-Fi form fields.
// SSID must be non-empty to produce output; Encryption defaults to WPA.
type WifiCredential struct {
	SSID       string         `json:"ssid"`
	Password   string         `json:"password"`
	Encryption WifiEncryption `json:"encryption"`
}

// SMSMessage holds the SMS form fields. Message may be empty.
type SMSMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PaymentInfo holds the bank transfer form fields.
// BackgroundURL is only meaningful for the web-payment template.
type PaymentInfo struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Amount        string `json:"amount"`
	BackgroundURL string `json:"bg"`
}

// MemoDecorationSize is one of the three named decoration text sizes.
type MemoDecorationSize string

const (
	MemoSizeSmall  MemoDecorationSize = "small"
	MemoSizeMedium MemoDecorationSize = "medium"
	MemoSizeLarge  MemoDecorationSize = "large"
)

// MemoDecoration is a client-side annotation shown next to the generated
// QR image. It is never encoded into the payload or the link and is reset
// whenever the active content type changes.
type MemoDecoration struct {
	Text  string             `json:"text"`
	Color string             `json:"color"`
	Size  MemoDecorationSize `json:"size"`
}

// NewMemoDecoration returns a decoration with the documented defaults:
// black text at the medium size step.
func NewMemoDecoration() MemoDecoration {
	return MemoDecoration{Color: "#000000", Size: MemoSizeMedium}
}
