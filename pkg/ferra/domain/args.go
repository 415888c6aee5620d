package domain

import (
	"errors"
	"strings"

	"ferrabot.org/ferra/pkg/common"
)

// ErrNoCode is reported when a command is invoked without any code to work on. Frontends answer with the
// command's help text in that case.
var ErrNoCode = errors.New("no code provided")

// Args is one parsed command invocation: the free-text body plus the recognized key=value modifier tokens.
type Args struct {
	Body   string
	Params map[string]string
}

// ParseArgs splits the raw text following the command word into key=value params and the remaining body.
// Only the leading run of key=value tokens is consumed, so assignments inside the code are never eaten.
// Param values may be quoted.
func ParseArgs(raw string) Args {
	params := make(map[string]string)
	body := strings.TrimSpace(raw)
	for body != "" {
		token := body
		if end := strings.IndexAny(body, " \t\n"); end != -1 {
			token = body[:end]
		}
		equalsSign := strings.IndexByte(token, '=')
		if equalsSign <= 0 || !isParamKey(token[:equalsSign]) {
			break
		}
		value := token[equalsSign+1:]
		value = common.RemoveSingleQuotesIfAny(value)
		value = common.RemoveDoubleQuotesIfAny(value)
		params[token[:equalsSign]] = value
		body = strings.TrimSpace(body[len(token):])
	}
	return Args{Body: body, Params: params}
}

// Param keys are plain lowercase words (channel, mode, edition). Anything else starts the body.
func isParamKey(key string) bool {
	for _, r := range key {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ExtractCode pulls the code out of a chat message body: the content of the first ``` fenced block if present
// (a `rust` language tag after the opening fence is dropped), otherwise an inline `...` span, otherwise the
// body itself. Returns ErrNoCode when nothing remains.
func ExtractCode(body string) (string, error) {
	body = strings.TrimSpace(body)
	if start := strings.Index(body, "```"); start != -1 {
		rest := body[start+3:]
		if end := strings.Index(rest, "```"); end != -1 {
			code := rest[:end]
			if newline := strings.IndexByte(code, '\n'); newline != -1 && isLanguageTag(strings.TrimSpace(code[:newline])) {
				code = code[newline+1:]
			}
			code = strings.Trim(code, "\n")
			if strings.TrimSpace(code) == "" {
				return "", ErrNoCode
			}
			return code, nil
		}
	}
	if len(body) > 1 && body[0] == '`' && body[len(body)-1] == '`' {
		body = strings.Trim(body, "`")
	}
	if body == "" {
		return "", ErrNoCode
	}
	return body, nil
}

func isLanguageTag(line string) bool {
	return line == "" || strings.EqualFold(line, "rust") || strings.EqualFold(line, "rs")
}
