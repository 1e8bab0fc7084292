package model

// キオスク端末の1セッション。IDはこちらで採番、Tokenはバックエンドが
// ログイン時に発行したものをそのまま預かって各API呼び出しに添える。
type Session struct {
	ID    string
	Token string
}
