// Package main provides localization for the framecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Build videos frame by frame and stream them to ffmpeg.": "フレーム単位で動画を構築し、ffmpegにストリーミングします。",

		// Render command
		"Render an animated test pattern as MP4 video": "アニメーションテストパターンをMP4動画としてレンダリング",

		// Probe command
		"Inspect an MP4 file and print its video details": "MP4ファイルを検査し、動画の詳細を表示",

		// Version command
		"Show version information":  "バージョン情報を表示",
		"framecast (Go) version %s": "framecast (Go版) バージョン %s",

		// Render flags
		"Output MP4 file path":                                 "出力MP4ファイルパス",
		"YAML configuration file (flags override its values)":  "YAML設定ファイル（フラグが値を上書き）",
		"Output video width (default: 640)":                    "出力動画の幅（デフォルト: 640）",
		"Output video height (default: 480)":                   "出力動画の高さ（デフォルト: 480）",
		"Frame rate (default: 30)":                             "フレームレート（デフォルト: 30）",
		"Number of frames to render (default: 150)":            "レンダリングするフレーム数（デフォルト: 150）",
		"Animation pattern (hsl-sweep, plasma, gradient)":      "アニメーションパターン（hsl-sweep, plasma, gradient）",
		"Keep previous frame contents between frames":          "フレーム間で前フレームの内容を保持",
		"Draw a frame-counter overlay (gradient pattern only)": "フレームカウンターオーバーレイを描画（gradientパターンのみ）",
		"Overlay color (hex, e.g., #ffffff)":                   "オーバーレイの色（16進数、例: #ffffff）",
		"Video quality (CRF 0-51, lower is better)":            "動画品質（CRF 0-51、低いほど高品質）",
		"x264 encoding preset (e.g., fast, medium, slow)":      "x264エンコードプリセット（例: fast, medium, slow）",
		"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)": "ffmpeg実行ファイルのパス（FFMPEG_PATH環境変数、PATHの順で探索）",
		"Output render summary to file (Markdown format)":                      "レンダリング概要をファイルに出力（Markdown形式）",
		"Enable debug output":                                                  "デバッグ出力を有効化",
		"Directory for debug output (default: ./debug)":                        "デバッグ出力のディレクトリ（デフォルト: ./debug）",
		"Log level (debug, info, warn, error)":                                 "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                              "全てのログ出力を抑制",

		// Probe flags
		"MP4 file to inspect": "検査するMP4ファイル",

		// Runtime messages
		"Overlay is only supported for the gradient pattern": "オーバーレイはgradientパターンのみ対応しています",
		"Summary saved to %s":                                "サマリーを %s に保存しました",

		// Probe output
		"Resolution: %dx%d": "解像度: %dx%d",
		"Codec: %s":         "コーデック: %s",
		"Duration: %d ms":   "再生時間: %d ms",
		"File size: %d bytes": "ファイルサイズ: %d バイト",
	})
}
