// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package server

import (
	"testing"

	"github.com/matu-sky/qrcode1/internal/config"
	myHTTP "github.com/matu-sky/qrcode1/internal/handler/http"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *myHTTP.Handler {
	encoder := qrpayload.NewEncoder("https://qr.example.com")
	return myHTTP.NewHandler(nil, encoder, "test", logger.Nop())
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0"}

	s, err := NewServer(newTestHandler(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}
