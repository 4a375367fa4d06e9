package entity

import "fmt"

// ChatTarget is one row of a fixed target table.
type ChatTarget struct {
	URL   string
	Title string
}

// ProvisionTargets are loaded into the child views created from reported
// quadrant positions, indexed by report order.
var ProvisionTargets = [QuadrantCount]ChatTarget{
	{URL: "https://claude.ai/new", Title: "Claude AI"},
	{URL: "https://chat.openai.com", Title: "ChatGPT"},
	{URL: "https://grok.x.ai", Title: "Grok"},
	{URL: "https://chat.deepseek.com", Title: "DeepSeek"},
}

// DirectTargets are loaded into the child views built at computed
// coordinates on the direct layout path, in slot order.
var DirectTargets = [QuadrantCount]ChatTarget{
	{URL: "https://grok.com/?referrer=website", Title: "Grok"},
	{URL: "https://claude.ai/new", Title: "Claude"},
	{URL: "https://chat.deepseek.com/", Title: "DeepSeek"},
	{URL: "https://chatgpt.com/", Title: "ChatGPT"},
}

// ProvisionedViewID names the child view created for report index i.
func ProvisionedViewID(i int) string {
	return fmt.Sprintf("webview%d", i+1)
}

// DirectViewID names the child view built for a slot on the direct path.
func DirectViewID(slot Slot) string {
	return fmt.Sprintf("main%d", int(slot)+1)
}
