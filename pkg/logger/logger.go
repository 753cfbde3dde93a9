package logger

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

// Log 是一个全局的、配置好的 logrus 实例
var Log *logrus.Logger

// InitLogger 初始化全局的Logger实例
func InitLogger() {
	Log = logrus.New()

	// JSON格式的结构化日志，方便之后接ELK、Loki这类平台
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// 日志同时输出到文件和控制台
	file, err := os.OpenFile("vega_tube.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("无法打开日志文件: %v", err)
	}
	mw := io.MultiWriter(os.Stdout, file)
	Log.SetOutput(mw)

	// 开发时可以改成Debug
	Log.SetLevel(logrus.InfoLevel)
}
