package boundary

import "github.com/abhisek/mathdrill/internal/problem"

// Schema is a named JSON schema for a request document.
type Schema struct {
	Name       string
	Definition map[string]any
}

var operandValue = boundedInt(problem.MaxOperand)

var answerValue = boundedInt(problem.MaxAnswer)

func boundedInt(limit int) map[string]any {
	return map[string]any{"type": "integer", "minimum": -limit, "maximum": limit}
}

var skillList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var questionObject = map[string]any{
	"type": "object",
	"properties": map[string]any{
		FieldFirstOperand:  operandValue,
		FieldSecondOperand: operandValue,
		FieldOperator:      map[string]any{"type": "string"},
	},
	"required": []any{FieldFirstOperand, FieldSecondOperand, FieldOperator},
}

var answerObject = map[string]any{
	"type": "object",
	"properties": map[string]any{
		FieldAnswer: answerValue,
	},
	"required": []any{FieldAnswer},
}

// GenerateRequestSchema describes a generate request.
var GenerateRequestSchema = &Schema{
	Name: "generate-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"positive_skills": skillList,
			"negative_skills": skillList,
			"settings": map[string]any{
				"type": "object",
				"properties": map[string]any{
					FieldMaxNumber: operandValue,
					FieldMinNumber: operandValue,
				},
				"required": []any{FieldMaxNumber, FieldMinNumber},
			},
		},
		"required": []any{"settings"},
	},
}

// CheckRequestSchema describes a check-answer request.
var CheckRequestSchema = &Schema{
	Name: "check-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills":         skillList,
			"answer":         answerObject,
			"correct_answer": answerObject,
			"question":       questionObject,
		},
		"required": []any{"answer", "correct_answer", "question"},
	},
}
