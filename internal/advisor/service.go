package advisor

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// Generator produces a model reply for a prompt. Implemented by GeminiClient.
type Generator interface {
	GenerateContent(prompt string) (string, error)
}

type Recommendations struct {
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

type Service struct {
	generator       Generator
	transactionRepo domain.TransactionRepository
	now             func() time.Time
}

func NewService(generator Generator, transactionRepo domain.TransactionRepository) *Service {
	return &Service{
		generator:       generator,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// GetRecommendations analyzes the caller's last three months of transactions.
// It never fails: any problem along the way falls back to the default
// recommendations, with the cause logged server-side.
func (s *Service) GetRecommendations(userID string) *Recommendations {
	now := s.now()
	transactions, err := s.transactionRepo.FindByUserInDateRange(userID, now.AddDate(0, -3, 0), now)
	if err != nil {
		log.Printf("advisor: failed to load transactions for user %s: %v", userID, err)
		return DefaultRecommendations()
	}
	if len(transactions) == 0 {
		return DefaultRecommendations()
	}

	reply, err := s.generator.GenerateContent(buildPrompt(transactions))
	if err != nil {
		log.Printf("advisor: generation failed for user %s: %v", userID, err)
		return DefaultRecommendations()
	}

	return parseReply(reply)
}

func buildPrompt(transactions []domain.Transaction) string {
	var prompt strings.Builder
	prompt.WriteString("Analyze the following financial transactions and provide personalized recommendations. ")
	prompt.WriteString("Return ONLY valid JSON in this exact format: {\"recommendations\": [\"rec1\", \"rec2\", ...], \"summary\": \"brief summary\"}\n\n")
	prompt.WriteString("Transactions:\n")

	expensesByCategory := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type == domain.TransactionTypeExpense {
			expensesByCategory[transaction.Category] = expensesByCategory[transaction.Category].Add(transaction.Amount)
		}
	}
	categories := make([]string, 0, len(expensesByCategory))
	for category := range expensesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	prompt.WriteString("Expense Categories:\n")
	totalExpense := decimal.Zero
	for _, category := range categories {
		amount := expensesByCategory[category]
		totalExpense = totalExpense.Add(amount)
		fmt.Fprintf(&prompt, "- %s: ₹%s\n", category, amount.StringFixed(2))
	}

	totalIncome := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == domain.TransactionTypeIncome {
			totalIncome = totalIncome.Add(transaction.Amount)
		}
	}

	fmt.Fprintf(&prompt, "\nTotal Income: ₹%s\n", totalIncome.StringFixed(2))
	fmt.Fprintf(&prompt, "Total Expense: ₹%s\n", totalExpense.StringFixed(2))

	prompt.WriteString("\nProvide 3-5 actionable financial recommendations and a brief summary. ")
	prompt.WriteString("Focus on savings, budgeting, and expense optimization. ")
	prompt.WriteString("Return ONLY valid JSON, no markdown, no code blocks.")

	return prompt.String()
}

func parseReply(reply string) *Recommendations {
	extracted, ok := extractJSON(reply)
	if !ok {
		return DefaultRecommendations()
	}

	var parsed Recommendations
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return DefaultRecommendations()
	}
	if len(parsed.Recommendations) == 0 {
		return DefaultRecommendations()
	}
	if parsed.Summary == "" {
		parsed.Summary = "No summary available"
	}
	return &parsed
}

// extractJSON cuts the substring between the first '{' and the last '}'.
// Model replies sometimes wrap the JSON in prose or code fences.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func DefaultRecommendations() *Recommendations {
	return &Recommendations{
		Recommendations: []string{
			"Track your expenses regularly to identify spending patterns",
			"Set up a monthly budget and stick to it",
			"Review your subscriptions and cancel unused services",
			"Build an emergency fund covering 3-6 months of expenses",
		},
		Summary: "Start tracking your finances to get personalized recommendations",
	}
}
