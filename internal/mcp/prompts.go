package mcp

import (
	"encoding/json"
	"fmt"
)

type promptGetParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

func (s *Server) prompts() []Prompt {
	return []Prompt{
		{
			Name:        "summarize_blog_post",
			Description: "Read an AWS blog post and produce a concise summary of its key points.",
			Arguments: []PromptArgument{
				{Name: "url", Description: "Full URL of the blog post to summarize", Required: true},
			},
		},
		{
			Name:        "find_posts_about",
			Description: "Search the AWS blogs for posts about a topic and report the most relevant ones.",
			Arguments: []PromptArgument{
				{Name: "topic", Description: "Topic or keywords to search for", Required: true},
				{Name: "category", Description: "Category slug to restrict the search to", Required: false},
			},
		},
		{
			Name:        "whats_new_in_aws",
			Description: "Survey the latest AWS blog posts and highlight notable announcements.",
			Arguments: []PromptArgument{
				{Name: "category", Description: "Category slug to focus on", Required: false},
			},
		},
	}
}

func (s *Server) handlePromptsList(req *Request) *Response {
	return successResponse(req.ID, map[string]any{"prompts": s.prompts()})
}

func (s *Server) handlePromptsGet(req *Request) *Response {
	var params promptGetParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, InvalidParams, "Invalid prompt parameters")
	}

	text, err := renderPrompt(params.Name, params.Arguments)
	if err != nil {
		return errorResponse(req.ID, InvalidParams, err.Error())
	}

	result := map[string]any{
		"messages": []PromptMessage{
			{
				Role:    "user",
				Content: []PromptContent{{Type: "text", Text: text}},
			},
		},
	}
	return successResponse(req.ID, result)
}

func renderPrompt(name string, args map[string]string) (string, error) {
	switch name {
	case "summarize_blog_post":
		url := args["url"]
		if url == "" {
			return "", fmt.Errorf("missing required argument: url")
		}
		return fmt.Sprintf(
			"Use the read_blog_post tool to read %s, then summarize the post in a few "+
				"short paragraphs. Lead with what was announced or explained, then the "+
				"practical takeaways for someone running workloads on AWS.", url), nil
	case "find_posts_about":
		topic := args["topic"]
		if topic == "" {
			return "", fmt.Errorf("missing required argument: topic")
		}
		if cat := args["category"]; cat != "" {
			return fmt.Sprintf(
				"Use the search_blog_posts tool with query %q and category %q. Report the "+
					"most relevant posts with their URLs and one-line descriptions.", topic, cat), nil
		}
		return fmt.Sprintf(
			"Use the search_blog_posts tool with query %q. Report the most relevant posts "+
				"with their URLs and one-line descriptions.", topic), nil
	case "whats_new_in_aws":
		if cat := args["category"]; cat != "" {
			return fmt.Sprintf(
				"Use the get_recent_posts tool with category %q and highlight the notable "+
					"announcements, newest first.", cat), nil
		}
		return "Use the get_recent_posts tool and highlight the notable announcements " +
			"across categories, newest first.", nil
	default:
		return "", fmt.Errorf("unknown prompt: %s", name)
	}
}
