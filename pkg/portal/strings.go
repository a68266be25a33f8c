package portal

import "strings"

// uiStrings holds the per-language chrome text of the candidate page.
type uiStrings struct {
	LangAttr            string
	NavIntro            string
	NavAssignments      string
	AssignmentsHeading  string
	AssignmentsSub      string
	ResearchHeading     string
	MissionHeading      string
	RequirementsHeading string
	DeliverablesHeading string
	EvaluationHeading   string
	DatasetsHeading     string
	StarterHeading      string
	QuestionsHeading    string
	StarterMissing      string
	ApplyTitle          string
	ApplyBody           string
	ApplyCTA            string
	AssignmentsEmpty    string
}

// introContent is the language-specific introduction block above the
// assignment list.
type introContent struct {
	IntroTitle       string
	IntroBody        string
	AIGuidanceTitle  string
	AIGuidanceBody   string
	AIGuidanceNote   string
	AssignmentChoice string
}

func canonicalLanguage(language string) (canonical string) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "english", "en", "en-us", "en-gb":
		canonical = "english"
	case "japanese", "ja", "ja-jp", "日本語", "japanese (日本語)":
		canonical = "japanese"
	case "chinese", "zh", "zh-cn", "中文", "chinese (中文)":
		canonical = "chinese"
	default:
		canonical = "korean"
	}
	return canonical
}

func uiForLanguage(language string) (ui uiStrings) {
	switch canonicalLanguage(language) {
	case "english":
		ui = uiStrings{
			LangAttr:            "en",
			NavIntro:            "Intro",
			NavAssignments:      "Assignments",
			AssignmentsHeading:  "Assignments",
			AssignmentsSub:      "Review the assignments and download the datasets/starter code to get started.",
			ResearchHeading:     "Role Background",
			MissionHeading:      "Assignment Overview",
			RequirementsHeading: "Technical Requirements",
			DeliverablesHeading: "Deliverables",
			EvaluationHeading:   "Evaluation Criteria",
			DatasetsHeading:     "Datasets",
			StarterHeading:      "Starter Code",
			QuestionsHeading:    "Deep-Dive Questions",
			StarterMissing:      "No starter code is provided.",
			ApplyTitle:          "How to Apply",
			ApplyBody:           "Pick the assignment that best showcases your abilities, then submit your solution with your approach, testing strategy, and AI tool usage notes.",
			ApplyCTA:            "Submit Application",
			AssignmentsEmpty:    "No assignments available.",
		}
	case "japanese":
		ui = uiStrings{
			LangAttr:            "ja",
			NavIntro:            "イントロ",
			NavAssignments:      "課題",
			AssignmentsHeading:  "課題一覧",
			AssignmentsSub:      "実務型課題を確認し、データセットとスターターコードをダウンロードして着手してください。",
			ResearchHeading:     "ロール背景",
			MissionHeading:      "課題概要",
			RequirementsHeading: "技術要件",
			DeliverablesHeading: "提出物",
			EvaluationHeading:   "評価基準",
			DatasetsHeading:     "データセット",
			StarterHeading:      "スターターコード",
			QuestionsHeading:    "ディスカッション質問",
			StarterMissing:      "提供されているスターターコードはありません。",
			ApplyTitle:          "応募案内",
			ApplyBody:           "最も自信のある課題を選び、成果物・実装戦略・テスト方法・AIツール活用内容をまとめて提出してください。",
			ApplyCTA:            "応募する",
			AssignmentsEmpty:    "登録されている課題がありません。",
		}
	case "chinese":
		ui = uiStrings{
			LangAttr:            "zh-Hans",
			NavIntro:            "介绍",
			NavAssignments:      "作业",
			AssignmentsHeading:  "作业列表",
			AssignmentsSub:      "查看实战型作业，并下载数据集与起始代码开始实施。",
			ResearchHeading:     "职位背景",
			MissionHeading:      "作业说明",
			RequirementsHeading: "技术要求",
			DeliverablesHeading: "提交物",
			EvaluationHeading:   "评估标准",
			DatasetsHeading:     "数据集",
			StarterHeading:      "起始代码",
			QuestionsHeading:    "深度讨论问题",
			StarterMissing:      "暂无提供起始代码。",
			ApplyTitle:          "申请指南",
			ApplyBody:           "请选择最能展现你能力的作业，提交成果、实现策略、测试计划以及 AI 工具使用说明。",
			ApplyCTA:            "提交申请",
			AssignmentsEmpty:    "尚无可用作业。",
		}
	default:
		ui = uiStrings{
			LangAttr:            "ko",
			NavIntro:            "Intro",
			NavAssignments:      "Assignments",
			AssignmentsHeading:  "Assignments",
			AssignmentsSub:      "실무형 과제를 확인하고 데이터/스타터 코드를 내려받아 시작해 보세요.",
			ResearchHeading:     "직무 배경",
			MissionHeading:      "과제 설명",
			RequirementsHeading: "기술 요구사항",
			DeliverablesHeading: "제출물",
			EvaluationHeading:   "평가 기준",
			DatasetsHeading:     "데이터셋",
			StarterHeading:      "스타터 코드",
			QuestionsHeading:    "심층 토론 질문",
			StarterMissing:      "제공된 스타터 코드가 없습니다.",
			ApplyTitle:          "지원 안내",
			ApplyBody:           "가장 자신 있는 과제를 선택하여 결과물, 구현 전략, 테스트 및 AI 도구 활용 내역을 정리해 제출해 주세요.",
			ApplyCTA:            "지원하기",
			AssignmentsEmpty:    "등록된 과제가 없습니다.",
		}
	}
	return ui
}

func introForLanguage(language, company string) (intro introContent) {
	switch canonicalLanguage(language) {
	case "english":
		intro = introContent{
			IntroTitle:       "About " + company,
			IntroBody:        company + " is looking for engineers who take ownership of customer problems end to end. This portal contains a practical take-home assignment tailored to the role you applied for.",
			AIGuidanceTitle:  "AI Tool Usage Guide",
			AIGuidanceBody:   "You are free to use AI tools such as GitHub Copilot and ChatGPT to solve this assignment. AI fluency is an important competency for modern engineers.",
			AIGuidanceNote:   "When submitting, describe in your README.md which tools you used and how they helped solve the problem.",
			AssignmentChoice: "Feel free to choose and submit any of the prepared assignments that you can complete.",
		}
	case "japanese":
		intro = introContent{
			IntroTitle:       company + " について",
			IntroBody:        company + " は、顧客の問題に最後まで責任を持つエンジニアを募集しています。このポータルには、応募されたロールに合わせた実務型課題が含まれています。",
			AIGuidanceTitle:  "AIツール活用ガイド",
			AIGuidanceBody:   "本課題はGitHub Copilot、ChatGPTなどのAIツールを自由に活用して解決できます。AI活用能力は現代のエンジニアにとって重要な能力です。",
			AIGuidanceNote:   "提出時にREADME.mdファイルに、どのツールをどのように活用したかを具体的に記述してください。",
			AssignmentChoice: "用意された課題の中から実行可能な項目を自由に選択して提出してください。",
		}
	case "chinese":
		intro = introContent{
			IntroTitle:       "关于 " + company,
			IntroBody:        company + " 正在寻找能够对客户问题负责到底的工程师。本页面包含针对您所申请职位定制的实战型作业。",
			AIGuidanceTitle:  "AI 工具使用指南",
			AIGuidanceBody:   "本作业可以自由使用 GitHub Copilot、ChatGPT 等 AI 工具来解决。AI 应用能力是现代工程师的重要能力。",
			AIGuidanceNote:   "提交时请在 README.md 文件中具体说明使用了哪些工具以及如何帮助解决问题。",
			AssignmentChoice: "请从准备好的作业中自由选择可完成的项目提交。",
		}
	default:
		intro = introContent{
			IntroTitle:       company + " 소개",
			IntroBody:        company + "은(는) 고객의 문제를 끝까지 책임지는 엔지니어를 찾고 있습니다. 이 포털에는 지원하신 직무에 맞춘 실무형 과제가 담겨 있습니다.",
			AIGuidanceTitle:  "AI 도구 활용 안내",
			AIGuidanceBody:   "본 과제는 GitHub Copilot, ChatGPT 등 AI 도구를 자유롭게 활용하여 해결할 수 있습니다. AI 활용 능력은 현대 엔지니어에게 중요한 역량입니다.",
			AIGuidanceNote:   "단, 제출 시 README.md 파일에 어떤 도구를 어떻게 활용했는지 구체적으로 서술해 주세요.",
			AssignmentChoice: "준비된 과제 중 수행 가능한 항목을 자유롭게 선택하여 제출하셔도 됩니다.",
		}
	}
	return intro
}
