// Package compose builds prompts for the form-driven request kinds.
//
// Each strategy is a fixed sequence of sentences. Some are always emitted,
// some only when an optional field is set, and the element list collapses
// to "none" when empty. Sentences are joined with single spaces so omitted
// clauses leave no gaps.
package compose

import (
	"fmt"
	"strings"

	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/tool"
)

// noneMarker replaces an empty element list.
const noneMarker = "none"

// Compose builds the prompt for a form-driven request.
// Returns request.ErrInvalidInput for kinds the composer does not handle.
func Compose(req request.Request) (string, error) {
	switch r := req.(type) {
	case request.Article:
		return Article(r), nil
	case request.LinkedInPost:
		return LinkedInPost(r), nil
	case request.YouTubeScript:
		return YouTubeScript(r), nil
	case request.Research:
		return Research(r), nil
	case request.LearnTopic:
		return LearnTopic(r), nil
	case request.XPost:
		return XPost(r), nil
	default:
		return "", fmt.Errorf("cannot compose %T: %w", req, request.ErrInvalidInput)
	}
}

// Article composes the long-form article prompt.
func Article(a request.Article) string {
	var s sentences
	s.add(`Write an exceptional, comprehensive, and unbeatable article on "%s" for %s, targeting %s.`,
		a.Topic, a.Platform, a.Audience)
	s.add("The article should be %s in length and written in a %s tone.",
		lower(a.Length), lower(a.Tone))
	if a.IsTechnical {
		s.add("The topic is technical, so include precise, accurate technical details and explanations.")
	} else {
		s.add("The topic is non-technical, so keep explanations accessible and engaging.")
	}
	s.add("The article must be the ultimate resource on the topic, covering all essential aspects to make it the best on the internet.")
	s.add("Include the following elements only if they add significant value and enhance understanding: %s.",
		joinSet(a.Features))
	s.addIf(a.Objectives, "Ensure the article addresses the following objectives: %s.")
	s.add("Ensure the content is well-structured, engaging, and flows logically, avoiding unnecessary filler.")
	s.add("Use clear examples, relatable analogies, and visuals (if applicable) to make complex ideas accessible.")
	s.add("Optimize for readability and impact, making it a definitive guide that leaves no question unanswered.")
	return s.String()
}

// LinkedInPost composes the LinkedIn post prompt.
func LinkedInPost(p request.LinkedInPost) string {
	var s sentences
	s.add(`Create an exceptional, highly engaging, and professional LinkedIn post about "%s" targeting %s.`,
		p.Topic, p.Audience)
	s.add("The post should be written in a %s tone, optimized for LinkedIn’s professional audience to maximize likes, comments, and shares.",
		lower(p.Tone))
	s.add("Include a compelling hook to grab attention, a clear and insightful message, and the following elements only if they add significant value: %s.",
		joinSet(p.Elements))
	s.add("End with a strong call-to-action: %s.", p.CTA)
	s.addIf(p.CrossPromotion, "Subtly promote the following: %s.")
	s.addIf(p.Objective, "Ensure the post achieves this objective: %s.")
	s.add("The post should be concise (150–300 words), feel personal and authentic, and position me as a knowledgeable expert.")
	s.add("%s", tool.Style(request.KindLinkedIn, p.AITool))
	return s.String()
}

// YouTubeScript composes the video script prompt.
func YouTubeScript(y request.YouTubeScript) string {
	var s sentences
	s.add(`Create an exceptional, highly engaging, and professional YouTube video script about "%s" targeting %s.`,
		y.Topic, y.Audience)
	s.add("The script should be %s in tone, optimized for YouTube to maximize viewer engagement, retention, and interaction (likes, comments, subscriptions).",
		lower(y.Tone))
	s.add("The video should be %s long, with a compelling hook in the first 5–10 seconds to grab attention, a clear and valuable main content section, and a strong call-to-action: %s.",
		lower(y.Length), y.CTA)
	s.add("Include the following elements only if they add significant value: %s.", joinSet(y.Elements))
	s.addIf(y.CrossPromotion, "Subtly promote the following: %s.")
	s.addIf(y.Objective, "Ensure the script achieves this objective: %s.")
	s.add("The script should be concise, conversational, and structured for YouTube (e.g., intro, main content, outro), positioning me as a knowledgeable and relatable expert.")
	s.add("%s", tool.Style(request.KindYouTube, y.AITool))
	return s.String()
}

// Research composes the research brief prompt.
func Research(r request.Research) string {
	var s sentences
	s.add(`Generate an exceptional, comprehensive, and authoritative research output on "%s" with a %s scope, targeting %s.`,
		r.Topic, lower(r.Scope), r.Audience)
	s.add("The research is intended for %s and should be written at a %s level of complexity.",
		lower(r.Purpose), lower(r.Depth))
	s.add("The output must be the ultimate resource on the topic, covering all essential aspects, including background, current state, challenges, and future trends, to make it the best on the internet.")
	s.add("Include the following elements only if they add significant value: %s.", joinSet(r.Elements))
	s.addIf(r.CrossReference, "Integrate or reference the following: %s.")
	s.addIf(r.Objective, "Ensure the research achieves this objective: %s.")
	s.add("The research should be well-structured, clear, and actionable, avoiding unnecessary filler.")
	s.add("Use precise terminology, relevant examples, and data-driven insights to ensure credibility.")
	s.add("%s", tool.Style(request.KindResearch, r.AITool))
	return s.String()
}

// LearnTopic composes the learning guide prompt.
func LearnTopic(l request.LearnTopic) string {
	var s sentences
	s.add(`Generate an exceptional, engaging, and comprehensive learning guide for "%s" tailored for %s with a %s knowledge level.`,
		l.Topic, l.Audience, lower(l.KnowledgeLevel))
	s.add("The guide should align with the learning goal of %s and be optimized for a %s learning style.",
		lower(l.LearningGoal), lower(l.LearningStyle))
	s.add("The guide must be the ultimate resource for mastering the topic, covering all essential concepts, practical applications, and advanced insights to make it the best on the internet.")
	s.add("Include the following elements only if they add significant value: %s.", joinSet(l.Elements))
	s.addIf(l.CrossReference, "Integrate or reference the following: %s.")
	s.addIf(l.Objective, "Ensure the guide achieves this objective: %s.")
	s.add("The guide should be well-structured, clear, and interactive, with step-by-step explanations, practical examples, and actionable exercises to ensure deep understanding and retention.")
	s.add("Avoid unnecessary filler and use relatable analogies and real-world applications to make complex ideas accessible.")
	s.add("%s", tool.Style(request.KindLearn, l.AITool))
	return s.String()
}

// XPost composes the X post prompt.
func XPost(x request.XPost) string {
	var s sentences
	s.add(`Create an exceptional, highly engaging, and concise X post about "%s" targeting %s.`,
		x.Topic, x.Audience)
	s.add("The post should be written in a %s tone, optimized for X’s fast-paced audience to maximize likes, retweets, and replies within the 280-character limit.",
		lower(x.Tone))
	s.add("Include a compelling hook to grab attention, a clear and valuable message, and the following elements only if they add significant value: %s.",
		joinSet(x.Elements))
	s.add("End with a strong call-to-action: %s.", x.CTA)
	s.addIf(x.CrossPromotion, "Subtly promote the following: %s.")
	s.addIf(x.Objective, "Ensure the post achieves this objective: %s.")
	s.add("The post should feel personal, authentic, and position me as a knowledgeable expert.")
	s.add("%s", tool.Style(request.KindXPost, x.AITool))
	return s.String()
}

// ---------------------------------------------------------------------------
// Fragment helpers
// ---------------------------------------------------------------------------

// sentences accumulates prompt fragments in order.
type sentences struct {
	parts []string
}

// add appends a formatted fragment. Empty results are dropped.
func (s *sentences) add(format string, args ...any) {
	if text := strings.TrimSpace(fmt.Sprintf(format, args...)); text != "" {
		s.parts = append(s.parts, text)
	}
}

// addIf appends format with value substituted, only if value is not blank.
func (s *sentences) addIf(value, format string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	s.add(format, value)
}

// String joins the fragments with single spaces.
func (s *sentences) String() string {
	return strings.TrimSpace(strings.Join(s.parts, " "))
}

// joinSet renders a multi-select field: lowercased, comma-joined, in the
// order given, or noneMarker when nothing was selected.
func joinSet(items []string) string {
	joined := strings.ToLower(strings.Join(items, ", "))
	if joined == "" {
		return noneMarker
	}
	return joined
}

func lower(s string) string {
	return strings.ToLower(s)
}
