package minutes

import "fmt"

const minutesPrompt = `以下は会議の書き起こしテキストです。このテキストを元に、プロフェッショナルな議事録を作成してください。

# 書き起こしテキスト:
%s

# 議事録の形式:
1. 会議の基本情報（タイトル、日時、場所、参加者）
2. 議題
3. 議論の要点（発言者ごとに整理）
4. 決定事項（箇条書き）
5. 次回のアクション項目（担当者と期限）
6. 次回会議の予定（日時、場所）

話し言葉から書き言葉に適切に変換し、冗長な表現は省略して簡潔にまとめてください。
情報が不足している場合は、その項目は「情報なし」と記載してください。
マークダウン形式で議事録を作成してください。
`

// BuildPrompt embeds the transcript into the minutes template.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(minutesPrompt, transcript)
}
