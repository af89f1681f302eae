// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"fmt"
	"strings"
)

// Style is a color or text format that Minecraft encodes as a
// section-sign code ("§a", "§l", ...).
type Style int

// Colors.
const (
	StyleWhite Style = iota
	StyleBlack
	StyleDarkBlue
	StyleDarkGreen
	StyleRed
	StyleDarkRed
	StyleDarkPurple
	StyleGold
	StyleYellow
	StyleGreen
	StyleDarkAqua
	StyleAqua
	StyleBlue
	StyleLightPurple
	StyleDarkGray
	StyleGray
)

// Formats.
const (
	StyleBold Style = iota + StyleGray + 1
	StyleItalic
	StyleStrikethrough
	StyleUnderline
	StyleReset
)

// Markup renders styles into the escape sequences of a presentation
// layer (an IRC client, a terminal, ...).
//
// Escape sequences must not contain the section sign.
type Markup interface {
	// Escape returns the sequence that switches to s.
	Escape(s Style) string

	// Span returns text rendered in s, ending the style afterwards.
	Span(s Style, text string) string

	// Reset returns the sequence that clears every active style.
	Reset() string
}

const (
	sectionSign    = "§"
	obfuscatedCode = sectionSign + "k"
)

type styleCode struct {
	code  byte
	style Style
}

// styleCodes is applied in order by [TranslateColorStyle].
var styleCodes = [...]styleCode{
	{'f', StyleWhite},
	{'0', StyleBlack},
	{'1', StyleDarkBlue},
	{'2', StyleDarkGreen},
	{'c', StyleRed},
	{'4', StyleDarkRed},
	{'5', StyleDarkPurple},
	{'6', StyleGold},
	{'e', StyleYellow},
	{'a', StyleGreen},
	{'3', StyleDarkAqua},
	{'b', StyleAqua},
	{'9', StyleBlue},
	{'d', StyleLightPurple},
	{'8', StyleDarkGray},
	{'7', StyleGray},
	{'l', StyleBold},
	{'o', StyleItalic},
	{'m', StyleStrikethrough},
	{'r', StyleReset},
	{'n', StyleUnderline},
}

// TranslateColorStyle replaces the section-sign codes in text with the
// escapes of m. The obfuscated code "§k" has no equivalent and is
// removed. Unknown codes are left as they are.
//
// The result contains no code that a second call would rewrite.
func TranslateColorStyle(text string, m Markup) string {
	// A pass can only expose a new code when an escape is empty, which
	// shortens text by at least one section sign.
	passes := strings.Count(text, sectionSign) + 1
	for i := 0; i < passes; i++ {
		next := translatePass(text, m)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func translatePass(text string, m Markup) string {
	for strings.Contains(text, obfuscatedCode) {
		text = strings.ReplaceAll(text, obfuscatedCode, "")
	}
	for _, c := range styleCodes {
		text = strings.ReplaceAll(text, sectionSign+string(c.code), m.Escape(c.style))
	}
	return text
}

// Describe renders r on one line the way the chat bot answered a ping:
//
//	<motd> - <online>/<max> players
//	<motd> - <version> - <online>/<max> players
//
// Style codes in the MOTD are translated with m and reset before the
// player counts.
func (r Response) Describe(m Markup) string {
	var line string
	switch r.Format {
	case FormatExtended:
		line = fmt.Sprintf("%s%sr - %s - %d/%d players", r.MOTD, sectionSign, r.Version, r.Online, r.Max)
	default:
		line = fmt.Sprintf("%s - %d/%d players", r.MOTD, r.Online, r.Max)
	}
	return TranslateColorStyle(line, m)
}

// IRC renders styles as mIRC control codes.
type IRC struct{}

var ircColors = [...]string{
	StyleWhite:       "00",
	StyleBlack:       "01",
	StyleDarkBlue:    "02",
	StyleDarkGreen:   "03",
	StyleRed:         "04",
	StyleDarkRed:     "05",
	StyleDarkPurple:  "06",
	StyleGold:        "07",
	StyleYellow:      "08",
	StyleGreen:       "09",
	StyleDarkAqua:    "10",
	StyleAqua:        "11",
	StyleBlue:        "12",
	StyleLightPurple: "13",
	StyleDarkGray:    "14",
	StyleGray:        "15",
}

const (
	ircColor         = "\x03"
	ircBold          = "\x02"
	ircItalic        = "\x1d"
	ircStrikethrough = "\x1e"
	ircUnderline     = "\x1f"
	ircReset         = "\x0f"
)

// Escape implements [Markup].
func (IRC) Escape(s Style) string {
	switch {
	case s >= StyleWhite && s <= StyleGray:
		// Always two digits so a following digit is not read as part of the color.
		return ircColor + ircColors[s]
	case s == StyleBold:
		return ircBold
	case s == StyleItalic:
		return ircItalic
	case s == StyleStrikethrough:
		return ircStrikethrough
	case s == StyleUnderline:
		return ircUnderline
	case s == StyleReset:
		return ircReset
	default:
		return ""
	}
}

// Span implements [Markup].
func (m IRC) Span(s Style, text string) string {
	switch {
	case s >= StyleWhite && s <= StyleGray:
		return m.Escape(s) + text + ircColor
	case s == StyleReset:
		return text
	default:
		return m.Escape(s) + text + m.Escape(s)
	}
}

// Reset implements [Markup].
func (IRC) Reset() string { return ircReset }

// ANSI renders styles as terminal SGR sequences.
type ANSI struct{}

var ansiCodes = [...]int{
	StyleWhite:         97,
	StyleBlack:         30,
	StyleDarkBlue:      34,
	StyleDarkGreen:     32,
	StyleRed:           91,
	StyleDarkRed:       31,
	StyleDarkPurple:    35,
	StyleGold:          33,
	StyleYellow:        93,
	StyleGreen:         92,
	StyleDarkAqua:      36,
	StyleAqua:          96,
	StyleBlue:          94,
	StyleLightPurple:   95,
	StyleDarkGray:      90,
	StyleGray:          37,
	StyleBold:          1,
	StyleItalic:        3,
	StyleStrikethrough: 9,
	StyleUnderline:     4,
	StyleReset:         0,
}

// Escape implements [Markup].
func (ANSI) Escape(s Style) string {
	if s < 0 || int(s) >= len(ansiCodes) {
		return ""
	}
	return fmt.Sprintf("\x1b[%dm", ansiCodes[s])
}

// Span implements [Markup].
func (m ANSI) Span(s Style, text string) string {
	return m.Escape(s) + text + m.Reset()
}

// Reset implements [Markup].
func (ANSI) Reset() string { return "\x1b[0m" }

// Plain drops all styling.
type Plain struct{}

// Escape implements [Markup].
func (Plain) Escape(Style) string { return "" }

// Span implements [Markup].
func (Plain) Span(_ Style, text string) string { return text }

// Reset implements [Markup].
func (Plain) Reset() string { return "" }

// MarkupByName returns the markup called name ("irc", "ansi" or
// "plain"), and false for any other name.
func MarkupByName(name string) (Markup, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "irc":
		return IRC{}, true
	case "ansi":
		return ANSI{}, true
	case "plain", "":
		return Plain{}, true
	default:
		return nil, false
	}
}
