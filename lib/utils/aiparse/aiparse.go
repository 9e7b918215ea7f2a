package aiparse

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/pkg/errors"

	"vocacional-ai-backend/models"
)

// ExtractAnswer descarta o bloco de raciocínio de modelos que emitem <think>
func ExtractAnswer(response string) string {
	parts := strings.Split(response, "</think>")
	if len(parts) == 1 {
		return response
	}
	return parts[1]
}

// StripFormatTags remove a cerca de código ```json do início e ``` do fim
func StripFormatTags(answer string) string {
	answer = strings.Replace(answer, "```json", "", 1)
	return strings.Replace(answer, "```", "", 1)
}

// extractFencedBlock - conteúdo do primeiro bloco ```json ... ```
func extractFencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```json")
	if start < 0 {
		start = strings.Index(s, "```")
		if start < 0 {
			return "", false
		}
		start += len("```")
	} else {
		start += len("```json")
	}
	rest := s[start:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// extractBraceMatched - maior trecho entre a primeira '{' e a última '}'
func extractBraceMatched(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// UnmarshalLenient tenta interpretar a resposta do modelo como JSON na ordem:
// parse estrito, bloco cercado, trecho entre chaves, reparo automático.
// Esgotadas as tentativas devolve ErrInvalidAgentResponse.
func UnmarshalLenient(response string, out interface{}) error {
	answer := strings.TrimSpace(ExtractAnswer(response))
	if answer == "" {
		return errors.Wrap(models.ErrInvalidAgentResponse, "resposta vazia")
	}

	if err := json.Unmarshal([]byte(answer), out); err == nil {
		return nil
	}

	if block, ok := extractFencedBlock(answer); ok {
		if err := json.Unmarshal([]byte(block), out); err == nil {
			return nil
		}
	}

	if sub, ok := extractBraceMatched(answer); ok {
		if err := json.Unmarshal([]byte(sub), out); err == nil {
			return nil
		}
		if repaired, err := jsonrepair.JSONRepair(sub); err == nil {
			if err := json.Unmarshal([]byte(repaired), out); err == nil {
				return nil
			}
		}
	}

	return errors.Wrap(models.ErrInvalidAgentResponse, "não foi possível interpretar a resposta como JSON")
}
