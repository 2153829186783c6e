package sns

import "github.com/Proged2021/SkillMiner/internal/types"

// MockProfile returns the deterministic mock record for a platform. Fixed
// bio, follower count and interest lists; only the username varies.
func MockProfile(platform, handle string) types.SNSProfile {
	switch platform {
	case PlatformTwitter:
		if handle == "" {
			handle = "@demo_user"
		}
		return types.SNSProfile{
			Platform:      PlatformTwitter,
			Username:      handle,
			Bio:           "テクノロジーと教育に興味があるエンジニア。週末はDIYと写真撮影。",
			Followers:     1247,
			Interests:     []string{"テクノロジー", "教育", "写真", "DIY", "AI"},
			TopTopics:     []string{"プログラミング", "AI/ML", "生産性向上", "ガジェット", "自己啓発"},
			ActivityLevel: "high",
		}
	case PlatformLinkedIn:
		if handle == "" {
			handle = "demo-professional"
		}
		return types.SNSProfile{
			Platform:      PlatformLinkedIn,
			Username:      handle,
			Bio:           "5年以上のIT業界経験。プロジェクトマネジメントとシステム設計が得意。",
			Followers:     523,
			Interests:     []string{"プロジェクトマネジメント", "アジャイル開発", "DX推進", "チームビルディング"},
			TopTopics:     []string{"リーダーシップ", "デジタルトランスフォーメーション", "クラウド技術", "チームマネジメント"},
			ActivityLevel: "medium",
		}
	default:
		return types.SNSProfile{
			Platform:      platform,
			Username:      handle,
			Bio:           "オンラインで活動するクリエイター。",
			Followers:     100,
			Interests:     []string{"テクノロジー", "クリエイティブ"},
			TopTopics:     []string{"自己啓発"},
			ActivityLevel: "low",
		}
	}
}
