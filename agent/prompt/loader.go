package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	contractx "github.com/agrovaani/negotiation-agent/agent/contract"
)

//go:embed template/negotiator.txt
var negotiatorRaw string

var negotiatorTmpl = template.Must(
	template.New("negotiator").Funcs(template.FuncMap{
		"join":  strings.Join,
		"deref": func(v *int) int { return *v },
	}).Parse(strings.TrimSpace(negotiatorRaw)),
)

// RenderNegotiator fills the sales-executive system prompt with the
// per-turn negotiation context.
func RenderNegotiator(turnCtx contractx.TurnContext) (string, error) {
	var sb strings.Builder
	if err := negotiatorTmpl.Execute(&sb, turnCtx); err != nil {
		return "", fmt.Errorf("render negotiator prompt: %w", err)
	}
	return sb.String(), nil
}
