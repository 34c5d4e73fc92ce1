package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Render progress (info)
		"Rendering %d frames at %dx%d, %g fps": "%d フレームを %dx%d, %g fps でレンダリング中",
		"Rendered frame %d/%d":                 "フレームレンダリング中 %d/%d",
		"Output saved to %s":                   "出力を %s に保存しました",
		"Render completed in %d ms":            "レンダリングが %d ms で完了しました",
		"Interrupted, shutting down...":        "中断されました。シャットダウン中...",

		// Session (debug)
		"Video session established: %dx%d at %g fps": "ビデオセッション確立: %dx%d, %g fps",
		"Video session finished after %d frames":     "ビデオセッション終了: %d フレーム",
		"Starting ffmpeg: %s":                        "ffmpeg を起動中: %s",
		"ffmpeg finished: %s":                        "ffmpeg が完了しました: %s",

		// Probe
		"Probing output %s":                          "出力 %s を検証中",
		"Probed: %dx%d %s, %d ms, %d bytes":          "検証完了: %dx%d %s, %d ms, %d バイト",

		// Warnings
		"Failed to save debug frame %d: %s":          "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to save render summary: %s":          "レンダリング概要の保存に失敗しました: %s",
		"Failed to probe output: %s":                 "出力の検証に失敗しました: %s",

		// Errors
		"Failed to establish ffmpeg sink: %s":        "ffmpeg シンクの確立に失敗しました: %s",
		"Failed to emit frame: %s":                   "フレームの送出に失敗しました: %s",
		"Failed to finish video: %s":                 "動画の完了処理に失敗しました: %s",
	})
}
