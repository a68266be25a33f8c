package assignments

import (
	"fmt"
	"strings"
)

// schemaDescription is the JSON Schema handed to the model verbatim so the
// completion matches the Document structure. Kept as literal text rather
// than generated from the Go types so the prompt stays stable and reviewable.
const schemaDescription = `{
  "type": "object",
  "required": ["company", "job_role", "job_level", "assignments"],
  "properties": {
    "company": {"type": "string"},
    "job_role": {"type": "string"},
    "job_level": {"type": "string"},
    "assignments": {
      "type": "array",
      "minItems": 1,
      "maxItems": 1,
      "items": {
        "type": "object",
        "required": [
          "id", "title", "mission", "requirements", "deliverables",
          "ai_guidelines", "evaluation", "timeline", "discussion_questions",
          "datasets", "starter_code"
        ],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "mission": {"type": "string"},
          "summary": {"type": "string"},
          "requirements": {"type": "array", "items": {"type": "string"}},
          "deliverables": {"type": "array", "items": {"type": "string"}},
          "ai_guidelines": {"type": "array", "items": {"type": "string"}},
          "evaluation": {"type": "array", "items": {"type": "string"}},
          "timeline": {"type": "string"},
          "discussion_questions": {
            "type": "array", "minItems": 3, "maxItems": 5,
            "items": {"type": "string"}
          },
          "datasets": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "format", "records", "columns"],
              "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "format": {"type": "string", "enum": ["csv", "json"]},
                "records": {"type": "integer", "minimum": 10, "maximum": 2000},
                "filename": {"type": "string"},
                "columns": {
                  "type": "array", "minItems": 2, "maxItems": 8,
                  "items": {
                    "type": "object",
                    "required": ["name"],
                    "properties": {
                      "name": {"type": "string"},
                      "type": {
                        "type": "string",
                        "enum": ["string", "text", "integer", "float", "boolean", "date", "datetime", "category"],
                        "default": "string"
                      },
                      "description": {"type": "string"},
                      "choices": {"type": "array", "items": {"type": "string"}}
                    }
                  }
                }
              }
            }
          },
          "starter_code": {
            "type": "object",
            "properties": {
              "language": {"type": "string"},
              "description": {"type": "string"},
              "filename": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// BuildPrompts returns the system and user prompts for one generation run.
// Assignment prose follows the requested language; the structural contract
// (JSON, schema, English technical terms) is the same everywhere.
func BuildPrompts(params Params, researchSummary string) (system string, user string) {
	switch normalizeLanguage(params.Language) {
	case "korean":
		system = "당신은 채용 전문 디렉터입니다. 모든 결과는 JSON 형식으로 반환하며, " +
			"한국어와 영문 기술 용어만 사용하고 한자·중국어 문자를 절대 포함하지 않습니다."
		user = fmt.Sprintf(`회사명: %s
직무: %s %s
언어: %s

연구 요약:
%s

위 정보를 참고하여 해당 직무에 맞는 대표 테이크홈 과제 1개를 설계하세요.
- 이 과제는 회사 비즈니스의 가장 중요한 문제를 해결하도록 설계하고, 실무 수준의 깊이를 담아야 합니다.
- 과제에는 최소 1개의 맞춤형 데이터셋('datasets')과 스타터 코드 메타데이터('starter_code')를 포함시키고, 내용이 과제 요구사항과 긴밀히 연결되도록 하세요.
- 데이터셋의 'description'과 'columns'는 과제에서 다루는 문제를 해결하는 데 필요한 정보를 전달해야 하며, 'records' 값은 10~2000 범위에서 현실적인 크기를 설정하세요.
- 'starter_code'에는 후보자가 바로 활용할 수 있도록 언어('language'), 파일명('filename'), 제공 목적을 명확히 설명하고 과제 맥락과 연결하세요.
- 모든 설명은 간결하면서도 실무 지침이 되도록 작성하며, 기술 용어(예: API, Swift, Compose)는 영어를 유지할 수 있으나 그 외에는 한글을 사용하세요.

JSON Schema:
%s
`, params.Company, params.JobLevel, params.JobRole, params.Language, researchSummary, schemaDescription)

	case "japanese":
		system = "You are a recruitment director. Return all results in JSON format. " +
			"Write all assignment content in Japanese, but keep technical terms (API, Swift, JSON, etc.) in English."
		user = buildLatinUserPrompt(params, researchSummary, "Japanese (日本語)")

	case "chinese":
		system = "You are a recruitment director. Return all results in JSON format. " +
			"Write all assignment content in Chinese (Simplified), but keep technical terms (API, Swift, JSON, etc.) in English."
		user = buildLatinUserPrompt(params, researchSummary, "Chinese (中文)")

	default:
		system = "You are a recruitment director. Return all results in JSON format. " +
			"Write all assignment content in English."
		user = buildLatinUserPrompt(params, researchSummary, "English")
	}

	return system, user
}

// buildLatinUserPrompt is the shared user-prompt body for the non-Korean
// languages, which differ only in the target-language instruction.
func buildLatinUserPrompt(params Params, researchSummary, targetLanguage string) (user string) {
	user = fmt.Sprintf(`Company: %s
Role: %s %s
Language: %s

Research Summary:
%s

Based on the above, design one flagship take-home assignment for this role.
- The assignment should tackle the most critical problem area of the company's business.
- Include at least 1 custom dataset ('datasets') and starter code metadata ('starter_code'), tightly connected to the assignment requirements.
- Dataset 'description' and 'columns' should convey information needed to solve the problem, and 'records' should be realistic (10-2000).
- 'starter_code' should clearly explain the language, filename, and purpose so candidates can use it immediately.
- Write all descriptions in %s, keeping technical terms in English.

JSON Schema:
%s
`, params.Company, params.JobLevel, params.JobRole, targetLanguage, researchSummary, targetLanguage, schemaDescription)

	return user
}

// normalizeLanguage folds the language aliases accepted on the command line
// into a canonical key.
func normalizeLanguage(language string) (canonical string) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "korean", "한국어":
		canonical = "korean"
	case "japanese", "日本語", "japanese (日本語)":
		canonical = "japanese"
	case "chinese", "中文", "chinese (中文)":
		canonical = "chinese"
	default:
		canonical = "english"
	}
	return canonical
}
