// Package coverletter generates tailored cover letters with OpenAI.
package coverletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/logx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	model       = "gpt-4o-mini"
	temperature = 0.7
	maxTokens   = 600
)

var toneInstructions = map[string]string{
	"professional": "Use a formal, professional tone. Be concise and business-like.",
	"creative":     "Use a warm, engaging tone. Show personality while remaining professional.",
	"technical":    "Use precise technical language. Focus on specific skills and technologies.",
}

// Generator handles cover letter generation using OpenAI
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a new cover letter generator
func NewGenerator(apiKey string) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Generator{
		client: &client,
	}
}

// Result carries the generated letter and its metadata.
type Result struct {
	Success     bool   `json:"success"`
	CoverLetter string `json:"cover_letter"`
	WordCount   int    `json:"word_count,omitempty"`
	Tone        string `json:"tone,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Generate writes a cover letter for a job tailored to the profile. On API
// failure it returns a deterministic fallback letter rather than an error,
// flagged with Success=false.
func (g *Generator) Generate(ctx context.Context, profile *cv.Profile, job *posting.Job, tone string) *Result {
	prompt := buildPrompt(profile, job, tone)

	letter, err := g.complete(ctx, prompt)
	if err != nil {
		logx.Errorf("Cover letter generation failed: %v", err)
		return &Result{
			Success:     false,
			Error:       err.Error(),
			CoverLetter: fallbackLetter(profile, job),
		}
	}

	return &Result{
		Success:     true,
		CoverLetter: letter,
		WordCount:   len(strings.Fields(letter)),
		Tone:        tone,
		JobTitle:    job.Title,
		Company:     job.Company,
	}
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are an expert career advisor and professional cover letter writer."),
			openai.UserMessage(prompt),
		},
		Model:       model,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func buildPrompt(profile *cv.Profile, job *posting.Job, tone string) string {
	skills := profile.Skills
	if len(skills) > 10 {
		skills = skills[:10]
	}

	experience := strings.Join(firstN(profile.Experience, 2), " ")
	if len(experience) > 300 {
		experience = experience[:300]
	}

	education := "relevant education"
	if len(profile.Education) > 0 {
		education = profile.Education[0]
	}

	jobTitle := orDefault(job.Title, "this position")
	company := orDefault(job.Company, "your company")
	description := job.Description
	if len(description) > 500 {
		description = description[:500]
	}

	instruction, ok := toneInstructions[tone]
	if !ok {
		instruction = toneInstructions["professional"]
	}

	return fmt.Sprintf(`Write a compelling cover letter for a job application.

Job Details:
- Position: %s
- Company: %s
- Job Description: %s

Candidate Information:
- Skills: %s
- Recent Experience: %s
- Education: %s

Instructions:
- %s
- Length: 250-350 words
- Structure: Opening paragraph (express interest), body paragraph (highlight relevant skills and experience with specific examples), closing paragraph (call to action)
- Personalize to %s and %s
- Mention specific skills from the job description that match the candidate's background
- Do NOT include placeholder text like "[Your Name]" or "[Date]"
- Do NOT include address blocks or formal letter formatting
- Start directly with the content

Cover Letter:`,
		jobTitle, company, description,
		strings.Join(skills, ", "), experience, education,
		instruction, company, jobTitle)
}

// fallbackLetter is the template used when the API is unavailable.
func fallbackLetter(profile *cv.Profile, job *posting.Job) string {
	jobTitle := orDefault(job.Title, "this position")
	company := orDefault(job.Company, "your company")
	skills := strings.Join(firstN(profile.Skills, 5), ", ")

	return fmt.Sprintf(`I am writing to express my strong interest in the %s position at %s. With my background in %s, I am confident in my ability to contribute effectively to your team.

Throughout my career, I have developed strong technical and problem-solving skills that align well with the requirements of this role. My experience has equipped me with the ability to work collaboratively, adapt to new challenges, and deliver results in fast-paced environments.

I am particularly drawn to %s because of its reputation for innovation and excellence. I am excited about the opportunity to bring my skills and enthusiasm to your team and contribute to your continued success.

I would welcome the opportunity to discuss how my background aligns with your needs. Thank you for considering my application.

Sincerely,
[Your Name]`, jobTitle, company, skills, company)
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
