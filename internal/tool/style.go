package tool

import "github.com/alnah/go-promptgen/internal/request"

// styles holds the closing guidance sentence per content kind and tool.
// Every kind listed here has an entry for every tool in toolOrder.
var styles = map[request.Kind]map[string]string{
	request.KindLinkedIn: {
		GrokName:    "Optimize for Grok’s conversational and witty style to make the post stand out as the best on LinkedIn.",
		ChatGPTName: "Leverage ChatGPT’s creative storytelling to craft a compelling and relatable post.",
		GeminiName:  "Use Gemini’s structured clarity to ensure the post is concise and impactful.",
	},
	request.KindYouTube: {
		GrokName:    "Optimize for Grok’s conversational and witty style to make the script stand out as the best on YouTube.",
		ChatGPTName: "Leverage ChatGPT’s creative storytelling to craft a compelling and engaging script.",
		GeminiName:  "Use Gemini’s structured clarity to ensure the script is concise and impactful.",
	},
	request.KindResearch: {
		GrokName:    "Optimize for Grok’s analytical and conversational style to produce a research output that is both rigorous and engaging.",
		ChatGPTName: "Leverage ChatGPT’s narrative clarity to craft a clear and comprehensive research output.",
		GeminiName:  "Use Gemini’s structured precision to ensure the research is concise and authoritative.",
	},
	request.KindLearn: {
		GrokName:    "Optimize for Grok’s conversational and clear style to produce a learning guide that is both rigorous and engaging.",
		ChatGPTName: "Leverage ChatGPT’s narrative depth to craft a compelling and accessible learning guide.",
		GeminiName:  "Use Gemini’s structured clarity to ensure the learning guide is concise and effective.",
	},
	request.KindXPost: {
		GrokName:    "Optimize for Grok’s witty and conversational style to make the post stand out as the best on X.",
		ChatGPTName: "Leverage ChatGPT’s conversational flow to craft a compelling and relatable post.",
		GeminiName:  "Use Gemini’s structured clarity to ensure the post is concise and impactful.",
	},
}

// Style returns the style guidance for a content kind and tool name.
// Unknown or empty tool names resolve to Default. Kinds without style
// guidance (articles, templates, raw prompts) return "".
func Style(k request.Kind, name string) string {
	table, ok := styles[k]
	if !ok {
		return ""
	}
	return table[Resolve(name).name]
}
