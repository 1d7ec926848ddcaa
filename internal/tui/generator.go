package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/models"
)

// contentTabs is the tab order of the generator screen.
var contentTabs = []models.ContentType{
	models.URL, models.Text, models.VCard, models.Wifi,
	models.SMS, models.Payment, models.Menu,
}

var contentTabLabels = map[models.ContentType]string{
	models.URL:     "URL",
	models.Text:    "텍스트",
	models.VCard:   "연락처",
	models.Wifi:    "와이파이",
	models.SMS:     "문자",
	models.Payment: "송금",
	models.Menu:    "메뉴",
}

var templateLabels = map[models.Template]string{
	models.TemplateMemo:         "메모",
	models.TemplateStickyNote:   "포스트잇",
	models.TemplateReceipt:      "영수증",
	models.TemplateBankInfoCard: "계좌 안내 카드",
	models.TemplateWebPayment:   "웹 송금",
	models.TemplateBusinessCard: "명함",
	models.TemplateMenuTemplate: "메뉴판",
}

// fieldLabels holds the ordered input labels for each content type. The
// order matches the field order formState reads the inputs into.
var fieldLabels = map[models.ContentType][]string{
	models.URL:     {"URL"},
	models.Text:    {"내용"},
	models.VCard:   {"이름", "직함", "회사", "휴대전화", "직장 전화", "팩스", "이메일", "웹사이트", "주소"},
	models.Wifi:    {"네트워크 이름", "비밀번호"},
	models.SMS:     {"전화번호", "메시지"},
	models.Payment: {"은행", "계좌번호", "예금주", "금액", "배경 이미지 URL"},
	models.Menu:    nil,
}

const savedQRSize = 512

// generatorModel is the main screen: content-type tabs, the per-type form,
// the template picker, the memo decoration editor and the live payload
// preview. The decoration and the template reset whenever the active tab
// changes; the payload never carries the decoration.
type generatorModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	encoder *qrpayload.Encoder

	typeIdx int
	inputs  []textinput.Model
	focus   int

	templateIdx int
	wifiEnc     models.WifiEncryption

	decoration models.MemoDecoration
	decoInputs []textinput.Model
	decoFocus  int
	decorating bool

	status string
	errMsg string
	saving bool
}

func newGeneratorModel(ctx context.Context, serverAdapter adapter.ServerAdapter, encoder *qrpayload.Encoder) *generatorModel {
	m := &generatorModel{
		ctx:     ctx,
		adapter: serverAdapter,
		encoder: encoder,
	}
	m.setType(0)
	return m
}

// setType activates the tab at idx and resets everything the tab switch
// must not leak: form inputs, template choice, decoration, status. The
// template resets to the content-type default, which for payment is not
// the first selectable entry.
func (m *generatorModel) setType(idx int) {
	m.typeIdx = idx
	m.focus = 0
	m.templateIdx = 0
	def := models.DefaultTemplate(contentTabs[idx])
	for i, tmpl := range models.SelectableTemplates(contentTabs[idx]) {
		if tmpl == def {
			m.templateIdx = i
			break
		}
	}
	m.wifiEnc = models.WifiWPA
	m.decoration = models.NewMemoDecoration()
	m.decorating = false
	m.status = ""
	m.errMsg = ""

	labels := fieldLabels[m.contentType()]
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = label
		m.inputs[i].Width = 40
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	m.decoInputs = make([]textinput.Model, 2)
	m.decoInputs[0] = textinput.New()
	m.decoInputs[0].Placeholder = "문구"
	m.decoInputs[0].Width = 40
	m.decoInputs[1] = textinput.New()
	m.decoInputs[1].Placeholder = "#000000"
	m.decoInputs[1].Width = 10
}

func (m *generatorModel) contentType() models.ContentType {
	return contentTabs[m.typeIdx]
}

// currentTemplate resolves the template choice for the active tab. Tabs
// without a selectable template fall back to the per-type default.
func (m *generatorModel) currentTemplate() models.Template {
	selectable := models.SelectableTemplates(m.contentType())
	if len(selectable) == 0 {
		return models.DefaultTemplate(m.contentType())
	}
	return selectable[m.templateIdx%len(selectable)]
}

// formState assembles the discriminated form union from the current inputs.
func (m *generatorModel) formState() models.FormState {
	form := models.FormState{Type: m.contentType()}

	switch form.Type {
	case models.URL:
		form.URL = &models.URLForm{Value: strings.TrimSpace(m.inputs[0].Value())}
	case models.Text:
		form.Text = &models.TextForm{Value: m.inputs[0].Value()}
	case models.VCard:
		form.Contact = &models.ContactCard{
			Name:      strings.TrimSpace(m.inputs[0].Value()),
			Title:     strings.TrimSpace(m.inputs[1].Value()),
			Org:       strings.TrimSpace(m.inputs[2].Value()),
			Phone:     strings.TrimSpace(m.inputs[3].Value()),
			WorkPhone: strings.TrimSpace(m.inputs[4].Value()),
			Fax:       strings.TrimSpace(m.inputs[5].Value()),
			Email:     strings.TrimSpace(m.inputs[6].Value()),
			Website:   strings.TrimSpace(m.inputs[7].Value()),
			Address:   strings.TrimSpace(m.inputs[8].Value()),
		}
	case models.Wifi:
		form.Wifi = &models.WifiCredential{
			SSID:       m.inputs[0].Value(),
			Password:   m.inputs[1].Value(),
			Encryption: m.wifiEnc,
		}
	case models.SMS:
		form.SMS = &models.SMSMessage{
			Phone:   strings.TrimSpace(m.inputs[0].Value()),
			Message: m.inputs[1].Value(),
		}
	case models.Payment:
		form.Payment = &models.PaymentInfo{
			Bank:          strings.TrimSpace(m.inputs[0].Value()),
			AccountNumber: strings.TrimSpace(m.inputs[1].Value()),
			AccountHolder: strings.TrimSpace(m.inputs[2].Value()),
			Amount:        strings.TrimSpace(m.inputs[3].Value()),
			BackgroundURL: strings.TrimSpace(m.inputs[4].Value()),
		}
	case models.Menu:
		form.Menu = &models.MenuDocument{}
	}

	return form
}

// payload returns the live preview string, empty when the form is not yet
// encodable. The menu tab never encodes directly.
func (m *generatorModel) payload() string {
	if m.contentType() == models.Menu {
		return ""
	}
	payload, err := m.encoder.Encode(m.formState(), m.currentTemplate())
	if err != nil {
		return ""
	}
	return payload
}

func (m *generatorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *generatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case qrSavedMsg:
		m.saving = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "QR 이미지를 저장했습니다: " + result.path
		return m, clearStatusLater()
	case copiedMsg:
		m.status = result.what + " 복사했습니다"
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case registerSuccessNotice:
		m.status = result.email + " 계정이 등록되었습니다"
		return m, clearStatusLater()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+l":
		m.setType((m.typeIdx + 1) % len(contentTabs))
		return m, textinput.Blink
	case "ctrl+h":
		m.setType((m.typeIdx - 1 + len(contentTabs)) % len(contentTabs))
		return m, textinput.Blink
	case "ctrl+t":
		if m.decorating {
			m.cycleDecorationSize()
			return m, nil
		}
		if selectable := models.SelectableTemplates(m.contentType()); len(selectable) > 0 {
			m.templateIdx = (m.templateIdx + 1) % len(selectable)
		}
		return m, nil
	case "ctrl+e":
		if m.contentType() == models.Wifi {
			m.cycleWifiEncryption()
		}
		return m, nil
	case "ctrl+d":
		m.toggleDecoration()
		return m, textinput.Blink
	case "esc":
		if m.decorating {
			m.toggleDecoration()
		}
		return m, nil
	case "tab":
		m.focusNext()
		return m, nil
	case "shift+tab":
		m.focusPrev()
		return m, nil
	case "ctrl+s":
		return m, m.startSaveQR()
	case "ctrl+y":
		return m, m.startCopy()
	case "enter":
		if m.contentType() == models.Menu {
			return m, openMenus()
		}
		m.focusNext()
		return m, nil
	}

	var cmd tea.Cmd
	if m.decorating {
		m.decoInputs[m.decoFocus], cmd = m.decoInputs[m.decoFocus].Update(msg)
		m.decoration.Text = m.decoInputs[0].Value()
		if color := strings.TrimSpace(m.decoInputs[1].Value()); color != "" {
			m.decoration.Color = color
		}
		return m, cmd
	}
	if len(m.inputs) > 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *generatorModel) View() string {
	var b strings.Builder

	tabs := make([]string, len(contentTabs))
	for i, tab := range contentTabs {
		label := contentTabLabels[tab]
		if i == m.typeIdx {
			tabs[i] = activeTabStyle.Render("[" + label + "]")
		} else {
			tabs[i] = inactiveTabStyle.Render(" " + label + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if m.contentType() == models.Menu {
		b.WriteString("메뉴 QR은 저장된 메뉴에서 만들 수 있습니다.\n")
		b.WriteString("enter를 눌러 저장된 메뉴로 이동하세요.\n")
	} else {
		labels := fieldLabels[m.contentType()]
		width := 0
		for _, label := range labels {
			if w := len([]rune(label)); w > width {
				width = w
			}
		}
		for i, label := range labels {
			pad := strings.Repeat(" ", width-len([]rune(label)))
			b.WriteString(label + pad + " │ [" + m.inputs[i].View() + "]\n")
		}

		if m.contentType() == models.Wifi {
			b.WriteString("\n암호화: " + string(m.wifiEnc) + "  (ctrl+e: 변경)\n")
		}
		if selectable := models.SelectableTemplates(m.contentType()); len(selectable) > 0 {
			b.WriteString("\n템플릿: " + templateLabels[m.currentTemplate()] + "  (ctrl+t: 변경)\n")
		}

		b.WriteString(m.viewDecoration())
		b.WriteString("\n페이로드 미리보기\n")
		if payload := m.payload(); payload != "" {
			b.WriteString(payloadStyle.Render(fitText(payload, 400)))
			b.WriteString("\n")
		} else {
			b.WriteString(helpStyle.Render("내용을 입력하면 페이로드가 표시됩니다."))
			b.WriteString("\n")
		}
	}

	if m.saving {
		b.WriteString("\n저장 중...\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("오류: "+m.errMsg) + "\n")
	}

	hotKeys := "ctrl+h/ctrl+l: 유형 │ tab: 다음 필드 │ ctrl+s: QR 저장 │ ctrl+y: 복사 │ ctrl+d: 꾸미기"
	return renderPage("QR 코드 생성", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *generatorModel) viewDecoration() string {
	if !m.decorating && m.decoration.Text == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n꾸미기")
	if m.decorating {
		b.WriteString(" (편집 중, esc: 완료)")
	}
	b.WriteString("\n")
	if m.decorating {
		b.WriteString("문구 │ [" + m.decoInputs[0].View() + "]\n")
		b.WriteString("색상 │ [" + m.decoInputs[1].View() + "]\n")
		b.WriteString("크기 │ " + string(m.decoration.Size) + "  (ctrl+t: 변경)\n")
	} else {
		b.WriteString(fmt.Sprintf("%s (%s, %s)\n", m.decoration.Text, m.decoration.Color, m.decoration.Size))
	}
	return b.String()
}

func (m *generatorModel) toggleDecoration() {
	m.decorating = !m.decorating
	if m.decorating {
		if len(m.inputs) > 0 {
			m.inputs[m.focus].Blur()
		}
		m.decoFocus = 0
		m.decoInputs[0].SetValue(m.decoration.Text)
		m.decoInputs[0].Focus()
		m.decoInputs[1].Blur()
		return
	}
	for i := range m.decoInputs {
		m.decoInputs[i].Blur()
	}
	if len(m.inputs) > 0 {
		m.inputs[m.focus].Focus()
	}
}

func (m *generatorModel) cycleDecorationSize() {
	switch m.decoration.Size {
	case models.MemoSizeSmall:
		m.decoration.Size = models.MemoSizeMedium
	case models.MemoSizeMedium:
		m.decoration.Size = models.MemoSizeLarge
	default:
		m.decoration.Size = models.MemoSizeSmall
	}
}

func (m *generatorModel) cycleWifiEncryption() {
	switch m.wifiEnc {
	case models.WifiWPA:
		m.wifiEnc = models.WifiWEP
	case models.WifiWEP:
		m.wifiEnc = models.WifiNoPass
	default:
		m.wifiEnc = models.WifiWPA
	}
}

func (m *generatorModel) focusNext() {
	if m.decorating {
		m.decoInputs[m.decoFocus].Blur()
		m.decoFocus = (m.decoFocus + 1) % len(m.decoInputs)
		m.decoInputs[m.decoFocus].Focus()
		return
	}
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *generatorModel) focusPrev() {
	if m.decorating {
		m.decoInputs[m.decoFocus].Blur()
		m.decoFocus = (m.decoFocus - 1 + len(m.decoInputs)) % len(m.decoInputs)
		m.decoInputs[m.decoFocus].Focus()
		return
	}
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *generatorModel) startSaveQR() tea.Cmd {
	payload := m.payload()
	if payload == "" {
		m.errMsg = "저장할 페이로드가 없습니다"
		return nil
	}
	m.errMsg = ""
	m.saving = true

	ctx := m.ctx
	serverAdapter := m.adapter
	name := fmt.Sprintf("qr-%s-%s.png", m.contentType(), time.Now().Format("20060102-150405"))

	return func() tea.Msg {
		png, err := serverAdapter.FetchQR(ctx, payload, savedQRSize)
		if err != nil {
			return qrSavedMsg{err: err}
		}
		if err = os.WriteFile(name, png, 0o644); err != nil {
			return qrSavedMsg{err: err}
		}
		return qrSavedMsg{path: name}
	}
}

// copyText picks what ctrl+y puts on the clipboard. Payment copies the bare
// account number (the common remittance flow) and contact cards copy the
// display deep link, which opens the styled business card; everything else
// copies the payload itself.
func (m *generatorModel) copyText() (string, string) {
	payload := m.payload()
	if payload == "" {
		return "", ""
	}

	switch m.contentType() {
	case models.Payment:
		if form := m.formState(); form.Payment.AccountNumber != "" {
			return form.Payment.AccountNumber, "계좌번호를"
		}
	case models.VCard:
		if form := m.formState(); !form.Contact.Empty() {
			return m.encoder.BuildContactLink(*form.Contact), "명함 링크를"
		}
	}

	return payload, "페이로드를"
}

func (m *generatorModel) startCopy() tea.Cmd {
	text, what := m.copyText()
	if text == "" {
		m.errMsg = "복사할 페이로드가 없습니다"
		return nil
	}
	m.errMsg = ""

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return qrSavedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func openMenus() tea.Cmd {
	if getSessionUserID() == 0 {
		return func() tea.Msg { return navigateTo{Page: pageLogin} }
	}
	return func() tea.Msg { return navigateTo{Page: pageMenuList} }
}
