package services

import (
	"strings"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// Instruction delimiters for providers that take free-text prompts.
const (
	instructionOpen  = "<s>[INST] "
	instructionClose = " [/INST]</s>"
)

// Composer builds provider-specific prompts.
type Composer struct {
	prompts driven.PromptStore
}

// NewComposer creates a composer. A nil prompt store uses the built-in prompts.
func NewComposer(prompts driven.PromptStore) *Composer {
	return &Composer{prompts: prompts}
}

// Compose builds the prompt for question.
//
// A non-nil context is appended verbatim for closed-context answering and
// documents are ignored. Otherwise each document is appended as a
// "title: content" line in order. With neither, the quick-answer
// instruction is used.
func (c *Composer) Compose(
	question string, context *string, documents []domain.RegulationRecord, provider domain.AIProvider,
) domain.Prompt {
	system := c.load(driven.PromptSystem)

	var user strings.Builder
	switch {
	case context != nil:
		user.WriteString(c.load(driven.PromptContext))
		user.WriteString("\n\nBağlam: ")
		user.WriteString(*context)
		user.WriteString("\n\nSoru: ")
		user.WriteString(question)
	case len(documents) > 0:
		user.WriteString(c.load(driven.PromptContext))
		user.WriteString("\n\nMevzuat:\n")
		for _, doc := range documents {
			user.WriteString(doc.Title)
			user.WriteString(": ")
			user.WriteString(doc.Content)
			user.WriteString("\n")
		}
		user.WriteString("\nSoru: ")
		user.WriteString(question)
	default:
		user.WriteString("Soru: ")
		user.WriteString(question)
		user.WriteString("\n\n")
		user.WriteString(c.load(driven.PromptQuick))
	}

	prompt := domain.Prompt{
		System: system,
		User:   user.String(),
	}
	prompt.Text = system + "\n\n" + prompt.User
	if provider.UsesInstructionTags() {
		prompt.Text = instructionOpen + prompt.Text + instructionClose
	}
	return prompt
}

func (c *Composer) load(name string) string {
	if c.prompts != nil {
		prompt, err := c.prompts.Load(name)
		if err == nil {
			return prompt
		}
		logger.Warn("Prompt %q unavailable, using default: %v", name, err)
	}
	prompt, _ := domain.DefaultPrompt(name)
	return prompt
}
