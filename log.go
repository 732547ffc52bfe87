package rbtree

import (
	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"log/slog"
	"os"
)

var (
	// Info keeps the library quiet; pass WithLogger to see debug events.
	logger = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         slog.LevelInfo,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
)

func keyAttr(key uint32) slog.Attr {
	return slog.Uint64("key", uint64(key))
}

func (t *Tree) debug() slog.Attr {
	return slog.Group("tree",
		slog.Int("count", t.count),
		slog.Uint64("root", uint64(t.root)))
}
