package analysis

import (
	"strings"

	"github.com/Proged2021/SkillMiner/internal/types"
)

// FallbackReport synthesizes a Report locally from fixed templates. It is a
// pure, deterministic function of attrs, takes no network dependency and
// cannot fail: empty inputs are substituted with generic placeholders.
func FallbackReport(attrs types.UserAttributes) *types.Report {
	occupation := attrs.Occupation
	if occupation == "" {
		occupation = "会社員"
	}
	firstSkill := firstOr(attrs.Skills, "IT")
	firstHobby := firstOr(attrs.Hobbies, "趣味")

	hiddenSkills := []types.HiddenSkill{
		{
			Name:            "テクニカルライティング",
			Category:        types.CategoryCommunication,
			Confidence:      0.91,
			Description:     occupation + "の経験と" + firstSkill + "の知識を組み合わせることで、専門的な技術文書やブログ記事を執筆できる能力があると分析しました。",
			RevenueEstimate: "¥50,000〜¥150,000/月",
			DemandLevel:     types.DemandHigh,
		},
		{
			Name:            "オンライン教育コンテンツ制作",
			Category:        types.CategoryCreative,
			Confidence:      0.87,
			Description:     firstHobby + "への深い知識と" + firstOr(attrs.Skills, "専門スキル") + "を活かし、Udemy等でのオンラインコース制作が可能です。",
			RevenueEstimate: "¥30,000〜¥200,000/月",
			DemandLevel:     types.DemandHigh,
		},
		{
			Name:            "プロセス最適化コンサルティング",
			Category:        types.CategoryBusiness,
			Confidence:      0.83,
			Description:     occupation + "で培った業務効率化の経験を、中小企業向けのコンサルティングとして提供できます。",
			RevenueEstimate: "¥80,000〜¥300,000/月",
			DemandLevel:     types.DemandMedium,
		},
		{
			Name:            "データ可視化",
			Category:        types.CategoryTech,
			Confidence:      0.79,
			Description:     joinFirst(attrs.Skills, 2, "と", "ITと分析") + "のスキルを組み合わせ、ビジネスデータの可視化レポート作成が可能です。",
			RevenueEstimate: "¥40,000〜¥120,000/月",
			DemandLevel:     types.DemandHigh,
		},
		{
			Name:            "コミュニティマネジメント",
			Category:        types.CategoryCommunication,
			Confidence:      0.75,
			Description:     joinAllOr(attrs.Hobbies, "や", "趣味") + "への情熱を活かし、オンラインコミュニティの運営・マネジメントが可能です。",
			RevenueEstimate: "¥20,000〜¥80,000/月",
			DemandLevel:     types.DemandMedium,
		},
	}

	matchedJobs := []types.MatchedJob{
		{
			Title:          "技術ブログ記事執筆",
			Company:        "TechWrite Pro",
			MatchRate:      95,
			Salary:         "¥5,000〜¥30,000/記事",
			Difficulty:     types.DifficultyBeginner,
			Description:    "IT系メディアの技術記事執筆。あなたの専門知識を記事として発信しませんか？",
			RequiredSkills: []string{"ライティング", firstOr(attrs.Skills, "IT知識")},
			URL:            "#",
		},
		{
			Title:          "Udemyコース制作パートナー",
			Company:        "EduCreate Labs",
			MatchRate:      88,
			Salary:         "¥100,000〜¥500,000/コース",
			Difficulty:     types.DifficultyIntermediate,
			Description:    firstOr(attrs.Hobbies, "専門分野") + "に関するオンライン学習コースの企画・制作",
			RequiredSkills: []string{"プレゼンテーション", "コンテンツ制作"},
			URL:            "#",
		},
		{
			Title:          "業務効率化コンサルタント",
			Company:        "OptimizeHub",
			MatchRate:      84,
			Salary:         "¥50,000〜¥200,000/プロジェクト",
			Difficulty:     types.DifficultyIntermediate,
			Description:    "中小企業のDX推進・業務プロセス改善のコンサルティング",
			RequiredSkills: []string{"問題解決", "プロジェクト管理"},
			URL:            "#",
		},
		{
			Title:          "データダッシュボード制作",
			Company:        "DataViz Japan",
			MatchRate:      81,
			Salary:         "¥30,000〜¥100,000/案件",
			Difficulty:     types.DifficultyBeginner,
			Description:    "企業向けのデータ可視化ダッシュボードの設計・制作",
			RequiredSkills: []string{"データ分析", "可視化ツール"},
			URL:            "#",
		},
		{
			Title:          "オンラインコミュニティ運営",
			Company:        "Community First",
			MatchRate:      76,
			Salary:         "¥30,000〜¥80,000/月",
			Difficulty:     types.DifficultyBeginner,
			Description:    firstOr(attrs.Hobbies, "趣味") + "関連のオンラインコミュニティのモデレーション・運営",
			RequiredSkills: []string{"コミュニケーション", "SNS運用"},
			URL:            "#",
		},
	}

	roadmap := []types.RoadmapStep{
		{
			Week:        1,
			Title:       "スキル棚卸しと目標設定",
			Description: "発見されたスキルの中から最も収益性の高いものを選び、具体的な目標を設定します。",
			Resources:   []string{"https://example.com/goal-setting"},
			Milestone:   "3ヶ月後の収益目標を設定",
		},
		{
			Week:        2,
			Title:       "ポートフォリオ作成",
			Description: "選んだスキルを証明するためのサンプル作品やポートフォリオを作成します。",
			Resources:   []string{"https://example.com/portfolio-tips"},
			Milestone:   "ポートフォリオサイト公開",
		},
		{
			Week:        3,
			Title:       "プラットフォーム登録",
			Description: "クラウドソーシングやフリーランスプラットフォームにプロフィールを登録します。",
			Resources:   []string{"https://example.com/platforms"},
			Milestone:   "3つ以上のプラットフォームに登録",
		},
		{
			Week:        4,
			Title:       "最初の案件獲得",
			Description: "小さな案件から始めて実績を積みます。価格は低めでも経験を優先。",
			Resources:   []string{"https://example.com/first-gig"},
			Milestone:   "初めての案件を受注",
		},
		{
			Week:        5,
			Title:       "スキルアップ & フィードバック",
			Description: "最初の案件のフィードバックを元に、スキルを改善します。",
			Resources:   []string{"https://example.com/improvement"},
			Milestone:   "クライアントから高評価を獲得",
		},
		{
			Week:        6,
			Title:       "価格戦略の見直し",
			Description: "実績ができたら、適正な価格に調整します。",
			Resources:   []string{"https://example.com/pricing"},
			Milestone:   "単価を20%アップ",
		},
		{
			Week:        7,
			Title:       "継続案件の確保",
			Description: "リピートクライアントを獲得し、安定的な収入源を作ります。",
			Resources:   []string{"https://example.com/retention"},
			Milestone:   "月額契約を1件獲得",
		},
		{
			Week:        8,
			Title:       "スケールアップ計画",
			Description: "収益を拡大するための次のステップを計画します。",
			Resources:   []string{"https://example.com/scaling"},
			Milestone:   "月収目標の50%達成",
		},
	}

	return &types.Report{
		HiddenSkills: hiddenSkills,
		MatchedJobs:  matchedJobs,
		Roadmap:      roadmap,
	}
}

// firstOr returns the first element of list, or fallback when empty.
func firstOr(list []string, fallback string) string {
	if len(list) > 0 && list[0] != "" {
		return list[0]
	}
	return fallback
}

// joinFirst joins up to n leading elements with sep, or fallback when empty.
func joinFirst(list []string, n int, sep, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	if len(list) > n {
		list = list[:n]
	}
	return strings.Join(list, sep)
}

// joinAllOr joins all elements with sep, or fallback when empty.
func joinAllOr(list []string, sep, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return strings.Join(list, sep)
}
