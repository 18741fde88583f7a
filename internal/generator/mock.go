package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// templates are the canned replies. Each one embeds the user's input
// verbatim exactly once.
var templates = []string{
	`I understand you're asking about %q. Here's what I can help you with:

This is a comprehensive response that addresses your question.

**Key points:**
- Detailed analysis of your request
- Practical solutions and recommendations
- Additional resources and next steps

Would you like me to elaborate on any specific aspect of this topic?`,

	`Great question about %q! Let me break this down for you:

## Overview
This topic involves several important considerations.

## Next Steps
1. Consider the implications
2. Implement the solution
3. Test and iterate

Is there anything specific you'd like me to clarify or expand upon?`,

	`Excellent question! Based on your input about %q, here's my analysis:

### Understanding the Context
Your question touches on several areas worth exploring in detail.

### Comprehensive Answer
I can cover the fundamental concepts, practical applications, common
challenges and best practices.

Would you like me to dive deeper into any particular aspect?`,
}

// Mock is the stand-in Generator: it picks a canned template uniformly at
// random and completes after a uniform random delay in [min, max).
type Mock struct {
	min time.Duration
	max time.Duration
}

func NewMock(min, max time.Duration) *Mock {
	if max <= min {
		max = min + time.Millisecond
	}
	return &Mock{min: min, max: max}
}

func (m *Mock) Generate(ctx context.Context, userText string) (string, error) {
	delay := m.min + time.Duration(rand.Int63n(int64(m.max-m.min)))
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return fmt.Sprintf(templates[rand.Intn(len(templates))], userText), nil
}
