// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))
	l.Debug("hidden")
	l.Info("shown", "tone", 40)
	l.Warn("warning")

	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=INFO msg=shown tone=40")
	assert.Contains(t, s, "level=WARN msg=warning")
	assert.NotContains(t, s, "time=")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, termenv.Color(termenv.ANSIRed), LevelColor(slog.LevelError))
	assert.Equal(t, termenv.Color(termenv.ANSIYellow), LevelColor(slog.LevelWarn))
	assert.Equal(t, termenv.Color(termenv.ANSICyan), LevelColor(slog.LevelInfo))
	assert.Equal(t, termenv.Color(termenv.ANSIBrightBlack), LevelColor(slog.LevelDebug))
}
