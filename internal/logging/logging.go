package logging

import "go.uber.org/zap"

// New はdevならDevelopment、それ以外はProduction設定のロガーを返す。
func New(dev bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("cannot initialize zap")
	}
	return logger.Sugar()
}

// テストなど出力不要なとき用
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
