package assignments

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// sectionLabels maps assignment fields to human headers per language. The
// order is the render order.
type sectionLabels struct {
	DocumentSuffix      string
	Summary             string
	Requirements        string
	Deliverables        string
	AIGuidelines        string
	Evaluation          string
	Timeline            string
	DiscussionQuestions string
}

func labelsForLanguage(language string) (labels sectionLabels) {
	switch normalizeLanguage(language) {
	case "korean":
		labels = sectionLabels{
			DocumentSuffix:      "테이크홈 과제",
			Summary:             "요약",
			Requirements:        "핵심 요구사항",
			Deliverables:        "제출물",
			AIGuidelines:        "AI 활용 가이드라인",
			Evaluation:          "평가 기준",
			Timeline:            "예상 소요 시간",
			DiscussionQuestions: "심층 토론 질문",
		}
	case "japanese":
		labels = sectionLabels{
			DocumentSuffix:      "テイクホーム課題",
			Summary:             "概要",
			Requirements:        "必須要件",
			Deliverables:        "成果物",
			AIGuidelines:        "AI活用ガイドライン",
			Evaluation:          "評価基準",
			Timeline:            "想定所要時間",
			DiscussionQuestions: "ディスカッション質問",
		}
	case "chinese":
		labels = sectionLabels{
			DocumentSuffix:      "带回家作业",
			Summary:             "概述",
			Requirements:        "核心要求",
			Deliverables:        "交付物",
			AIGuidelines:        "AI 使用指南",
			Evaluation:          "评估标准",
			Timeline:            "预计用时",
			DiscussionQuestions: "深度讨论问题",
		}
	default:
		labels = sectionLabels{
			DocumentSuffix:      "Take-Home Assignment",
			Summary:             "Summary",
			Requirements:        "Key Requirements",
			Deliverables:        "Deliverables",
			AIGuidelines:        "AI Usage Guidelines",
			Evaluation:          "Evaluation Criteria",
			Timeline:            "Estimated Time",
			DiscussionQuestions: "Discussion Questions",
		}
	}
	return labels
}

// WriteMarkdown renders the assignment document as a human-readable preview.
// Headers follow the requested language; the overall shape mirrors the JSON.
func WriteMarkdown(doc Document, path string) (err error) {
	err = WriteMarkdownForLanguage(doc, path, "")
	return err
}

// WriteMarkdownForLanguage renders the preview with headers in the given
// language. An empty language defaults to Korean for backward compatibility
// with the single-language pipeline.
func WriteMarkdownForLanguage(doc Document, path, language string) (err error) {
	if language == "" {
		language = "korean"
	}
	labels := labelsForLanguage(language)

	var lines []string

	if doc.Company != "" || doc.JobRole != "" {
		title := strings.TrimSpace(fmt.Sprintf("%s %s %s %s",
			doc.Company, doc.JobLevel, doc.JobRole, labels.DocumentSuffix))
		lines = append(lines, "# "+title, "")
	}

	for _, assignment := range doc.Assignments {
		title := assignment.Title
		if title == "" {
			title = labels.DocumentSuffix
		}
		lines = append(lines, "## "+title)

		if assignment.Mission != "" {
			lines = append(lines, assignment.Mission, "")
		}

		lines = appendScalarSection(lines, labels.Summary, assignment.Summary)
		lines = appendListSection(lines, labels.Requirements, assignment.Requirements)
		lines = appendListSection(lines, labels.Deliverables, assignment.Deliverables)
		lines = appendListSection(lines, labels.AIGuidelines, assignment.AIGuidelines)
		lines = appendListSection(lines, labels.Evaluation, assignment.Evaluation)
		lines = appendScalarSection(lines, labels.Timeline, assignment.Timeline)
		lines = appendListSection(lines, labels.DiscussionQuestions, assignment.DiscussionQuestions)
	}

	content := strings.TrimSpace(strings.Join(lines, "\n")) + "\n"

	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown preview: %s", path)
		return err
	}

	return err
}

func appendScalarSection(lines []string, header, value string) (result []string) {
	result = lines
	if value == "" {
		return result
	}
	result = append(result, "### "+header, value, "")
	return result
}

func appendListSection(lines []string, header string, values []string) (result []string) {
	result = lines
	if len(values) == 0 {
		return result
	}
	result = append(result, "### "+header)
	for _, value := range values {
		result = append(result, "- "+value)
	}
	result = append(result, "")
	return result
}
