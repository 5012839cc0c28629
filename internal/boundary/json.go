package boundary

import (
	"encoding/json"
	"fmt"
)

// GenerateJSON handles a JSON generate request. The response is the JSON
// triple [question, answer, skills], or null when no question is available.
func (s *Service) GenerateJSON(raw []byte) ([]byte, error) {
	doc, err := decodeValidated(GenerateRequestSchema, raw)
	if err != nil {
		return nil, err
	}

	settings, _ := doc["settings"].(map[string]any)
	res, err := s.Generate(stringList(doc["positive_skills"]), stringList(doc["negative_skills"]), settings)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return []byte("null"), nil
	}
	return json.Marshal(res)
}

// CheckAnswerJSON handles a JSON check-answer request.
func CheckAnswerJSON(raw []byte) ([]byte, error) {
	doc, err := decodeValidated(CheckRequestSchema, raw)
	if err != nil {
		return nil, err
	}

	answer, _ := doc["answer"].(map[string]any)
	correct, _ := doc["correct_answer"].(map[string]any)
	question, _ := doc["question"].(map[string]any)
	res, err := CheckAnswer(stringList(doc["skills"]), answer, correct, question)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return out, nil
}

// stringList converts a validated JSON array of strings.
func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
