package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	LogLevelEnv   = "SNELLIUS_GPU_LOGLEVEL"
	LogPathEnv    = "SNELLIUS_GPU_LOGPATH"
	LogTimeoutEnv = "SNELLIUS_GPU_LOG_TIMEOUT"

	// hours before an existing log file is discarded
	DefaultLogTimeout = 24

	DebugLevel    = 10
	InfoLevel     = 20
	WarningLevel  = 30
	ErrorLevel    = 40
	CriticalLevel = 50
)

const logFilename = "snellius-gpu.log"

var Log *log.Logger

func init() {
	logPath := "/tmp/"
	if env := os.Getenv(LogPathEnv); len(env) > 0 {
		logPath = env
	}
	timeout := DefaultLogTimeout
	if env := os.Getenv(LogTimeoutEnv); len(env) > 0 {
		if t, err := strconv.Atoi(env); err == nil {
			timeout = t
		}
	}
	logfile := logPath + logFilename
	// First line of the log file holds its creation time; stale files
	// are removed rather than appended to forever.
	if f, err := os.Open(logfile); err == nil {
		scanner := bufio.NewScanner(f)
		scanner.Scan()
		f.Close()
		if tag, terr := time.Parse(time.RFC3339, scanner.Text()); terr == nil {
			if int(time.Since(tag).Hours()) > timeout {
				os.Remove(logfile)
			}
		} else {
			os.Remove(logfile)
		}
	}
	f, err := os.OpenFile(logfile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("logger cannot open file: %v",
			fmt.Errorf("logger: OpenFile: %w", err))
		Log = log.New(os.Stderr, "", log.LstdFlags)
		return
	}
	if stat, serr := f.Stat(); serr == nil {
		if stat.Size() == 0 {
			f.WriteString(time.Now().Format(time.RFC3339) + "\n")
			f.Sync()
		}
	}
	wrt := io.MultiWriter(os.Stderr, f)
	Log = log.New(wrt, "", log.LstdFlags)
}

func LogLevel() int {
	if env, err := strconv.Atoi(os.Getenv(LogLevelEnv)); err == nil {
		return env
	}
	return CriticalLevel
}

func levelName(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

func logPrintf(level int, format string, a ...interface{}) {
	if LogLevel() <= level {
		prefix := levelName(level) + " "
		Log.Printf(prefix+format, a...)
	}
}

func DebugPrintf(format string, a ...interface{}) {
	logPrintf(DebugLevel, format, a...)
}

func InfoPrintf(format string, a ...interface{}) {
	logPrintf(InfoLevel, format, a...)
}

func WarningPrintf(format string, a ...interface{}) {
	logPrintf(WarningLevel, format, a...)
}

func ErrorPrintf(format string, a ...interface{}) {
	logPrintf(ErrorLevel, format, a...)
}

func CriticalPrintf(format string, a ...interface{}) {
	logPrintf(CriticalLevel, format, a...)
}
