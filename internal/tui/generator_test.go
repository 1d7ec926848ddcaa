// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package tui

import (
	"context"
	"testing"

	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *generatorModel {
	t.Helper()
	return newGeneratorModel(context.Background(), nil, qrpayload.NewEncoder("https://qr.example.com"))
}

func selectTab(m *generatorModel, contentType models.ContentType) {
	for i, tab := range contentTabs {
		if tab == contentType {
			m.setType(i)
			return
		}
	}
}

// ── payload preview ──────────────────────────────────────────────────────────

func TestGenerator_EmptyFormProducesNoPayload(t *testing.T) {
	m := newTestGenerator(t)

	assert.Empty(t, m.payload())
}

func TestGenerator_URLPayloadIsRawInput(t *testing.T) {
	m := newTestGenerator(t)
	m.inputs[0].SetValue("https://example.com/menu")

	assert.Equal(t, "https://example.com/menu", m.payload())
}

func TestGenerator_TextPayloadIsDisplayLink(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Text)
	m.inputs[0].SetValue("안녕하세요")

	payload := m.payload()
	assert.Contains(t, payload, "https://qr.example.com/display?type=text")
	assert.Contains(t, payload, "template=memo")
}

func TestGenerator_WifiPayloadUsesSelectedEncryption(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Wifi)
	m.inputs[0].SetValue("cafe-modo")
	m.inputs[1].SetValue("secret;pass")
	m.cycleWifiEncryption()

	payload := m.payload()
	assert.Contains(t, payload, "WIFI:T:WEP;")
	assert.Contains(t, payload, `secret\;pass`)
}

func TestGenerator_MenuTabNeverEncodesDirectly(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Menu)

	assert.Empty(t, m.payload())
}

// ── tab switching resets ─────────────────────────────────────────────────────

func TestGenerator_TabSwitchResetsTemplateAndDecoration(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Payment)

	assert.Equal(t, models.TemplateBankInfoCard, m.currentTemplate())

	m.templateIdx = 4 // web-payment
	assert.Equal(t, models.TemplateWebPayment, m.currentTemplate())
	m.decoration.Text = "가을 할인"
	m.decoration.Size = models.MemoSizeLarge

	selectTab(m, models.Text)

	assert.Equal(t, models.TemplateMemo, m.currentTemplate())
	assert.Empty(t, m.decoration.Text)
	assert.Equal(t, models.NewMemoDecoration(), m.decoration)
}

func TestGenerator_TabSwitchSelectsContentTypeDefaultTemplate(t *testing.T) {
	m := newTestGenerator(t)

	for _, contentType := range contentTabs {
		selectTab(m, contentType)
		assert.Equal(t, models.DefaultTemplate(contentType), m.currentTemplate(),
			"content type %s", contentType)
	}
}

func TestGenerator_TabSwitchClearsFormInputs(t *testing.T) {
	m := newTestGenerator(t)
	m.inputs[0].SetValue("https://example.com")

	selectTab(m, models.Text)
	selectTab(m, models.URL)

	assert.Empty(t, m.inputs[0].Value())
}

func TestGenerator_FixedPresentationTypesFallBackToDefaultTemplate(t *testing.T) {
	m := newTestGenerator(t)

	selectTab(m, models.VCard)
	assert.Equal(t, models.TemplateMemo, m.currentTemplate())
	assert.Nil(t, models.SelectableTemplates(models.VCard))
}

// ── form assembly ────────────────────────────────────────────────────────────

func TestGenerator_PaymentFormState(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Payment)
	m.inputs[0].SetValue("신한은행")
	m.inputs[1].SetValue("110-123-456789")
	m.inputs[2].SetValue("홍길동")

	form := m.formState()
	require.NotNil(t, form.Payment)
	assert.Equal(t, "신한은행", form.Payment.Bank)
	assert.Equal(t, "110-123-456789", form.Payment.AccountNumber)
	assert.NotEmpty(t, m.payload())
}

// ── clipboard copy ───────────────────────────────────────────────────────────

func TestGenerator_CopyTextDefaultsToPayload(t *testing.T) {
	m := newTestGenerator(t)
	m.inputs[0].SetValue("https://example.com/menu")

	text, what := m.copyText()
	assert.Equal(t, "https://example.com/menu", text)
	assert.Equal(t, "페이로드를", what)
}

func TestGenerator_CopyTextPaymentCopiesAccountNumber(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.Payment)
	m.inputs[0].SetValue("신한은행")
	m.inputs[1].SetValue("110-123-456789")

	text, what := m.copyText()
	assert.Equal(t, "110-123-456789", text)
	assert.Equal(t, "계좌번호를", what)
}

func TestGenerator_CopyTextContactCopiesDisplayLink(t *testing.T) {
	m := newTestGenerator(t)
	selectTab(m, models.VCard)
	m.inputs[0].SetValue("홍길동")
	m.inputs[3].SetValue("010-1234-5678")

	text, what := m.copyText()
	assert.Equal(t, "명함 링크를", what)
	assert.Contains(t, text, "https://qr.example.com/display?type=vcard")
	assert.Contains(t, text, "name=")
	assert.Contains(t, text, "phone=")
}

// ── menu editor ──────────────────────────────────────────────────────────────

func newTestEditor(t *testing.T) *menuEditorModel {
	t.Helper()
	state, err := store.NewLocalStateStorage(":memory:")
	require.NoError(t, err)
	return newMenuEditorModel(context.Background(), nil, state)
}

func TestMenuEditor_GroupsRowsByCategory(t *testing.T) {
	m := newTestEditor(t)
	m.load(openEditorMsg{})

	m.header[0].SetValue("카페 모모")
	m.rows = []menuRow{
		newMenuRow("커피", "아메리카노", "4,500원", "4,000원"),
		newMenuRow("디저트", "치즈케이크", "6,000원", ""),
		newMenuRow("커피", "라떼", "5,000원", "4,500원"),
	}

	document := m.document()

	require.Len(t, document.Categories, 2)
	assert.Equal(t, "커피", document.Categories[0].Name)
	require.Len(t, document.Categories[0].Items, 2)
	assert.Equal(t, "라떼", document.Categories[0].Items[1].Name)
	assert.Equal(t, "디저트", document.Categories[1].Name)
}

func TestMenuEditor_BlankCategoryGetsFallbackName(t *testing.T) {
	m := newTestEditor(t)
	m.load(openEditorMsg{})

	m.header[0].SetValue("분식집")
	m.rows = []menuRow{newMenuRow("", "떡볶이", "5,000원", "")}

	document := m.document()

	require.Len(t, document.Categories, 1)
	assert.Equal(t, "메뉴", document.Categories[0].Name)
}

func TestMenuEditor_LoadFlattensDocumentIntoRows(t *testing.T) {
	m := newTestEditor(t)

	m.load(openEditorMsg{
		recordID: "3f1d2a6c-0000-4000-8000-000000000001",
		document: models.MenuDocument{
			ShopName: "카페 모모",
			Categories: []models.Category{
				{Name: "커피", Items: []models.MenuItem{
					{Name: "아메리카노", DineInPrice: "4,500원"},
					{Name: "라떼", DineInPrice: "5,000원"},
				}},
			},
		},
	})

	assert.Equal(t, "카페 모모", m.header[0].Value())
	require.Len(t, m.rows, 2)
	assert.Equal(t, "커피", m.rows[0].inputs[0].Value())
	assert.Equal(t, "라떼", m.rows[1].inputs[1].Value())
}

func TestMenuEditor_DraftSurvivesReopen(t *testing.T) {
	m := newTestEditor(t)
	m.load(openEditorMsg{})

	m.header[0].SetValue("카페 모모")
	m.rows = []menuRow{newMenuRow("커피", "아메리카노", "4,500원", "")}
	m.saveDraft()

	m.load(openEditorMsg{})

	assert.Equal(t, "카페 모모", m.header[0].Value())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "아메리카노", m.rows[0].inputs[1].Value())
}
