// Package intent classifies user queries into medical intents and the
// tool that should serve them.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/pkg/llm"
	"github.com/medassist/medassist-api/pkg/logger"
	"github.com/medassist/medassist-api/pkg/metrics"
)

const systemPrompt = `你是一个医疗助手的意图识别组件。你的任务是分析用户的查询，识别其意图和相关实体。

可能的意图类型包括：
1. hospital_search: 用户想要查找医院
2. doctor_search: 用户想要查找医生
3. appointment: 用户想要预约医生
4. navigation: 用户想要获取去医院的路线
5. general_medical: 用户有一般医疗咨询
6. unknown: 无法确定用户意图

可能的实体包括：
- specialty: 医疗专科，如"心脏科"、"神经科"等
- hospital_name: 医院名称
- doctor_name: 医生姓名
- location: 地点信息
- symptom: 症状描述

请以JSON格式返回分析结果，包括：
- intent: 意图类型（上述6种之一）
- confidence: 置信度（0-1之间的小数）
- entities: 识别到的实体（键值对）
- toolType: 应该使用的工具类型，可选值为：
  * search: 一般搜索
  * hospital_query: 医院查询
  * doctor_query: 医生查询
  * appointment: 预约
  * navigation: 导航

注意：
1. 当用户查询包含医生姓名时，请确保在entities中包含doctor_name字段，并将医生姓名作为其值。
2. 当用户查询包含医院名称时，请确保在entities中包含hospital_name字段，并将医院名称作为其值。
3. 当用户查询包含专科名称时，请确保在entities中包含specialty字段，并将专科名称作为其值。
4. 当用户查询是关于预约医生时，请将toolType设置为appointment。
5. 当用户查询是关于如何去医院时，请将toolType设置为navigation。
6. 当用户查询是关于某个医院的医生时，请将intent设置为doctor_search，toolType设置为doctor_query，并在entities中包含hospital_name字段。
7. 请特别注意识别查询中的医院名称，例如"北京协和医院有哪些医生"中，"北京协和医院"应被识别为hospital_name。

只返回JSON格式的结果，不要有其他文字。`

// jsonObjectRe grabs the outermost braces from a model response that
// wrapped its JSON in prose.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Config holds classifier settings.
type Config struct {
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Service runs intent recognition through a completion model. Classify
// never returns an error to callers: any failure degrades to the
// general-medical default so chat can still answer with web search.
type Service struct {
	cfg     Config
	client  llm.Client
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(cfg Config, client llm.Client, log *logger.Logger, m *metrics.Metrics) *Service {
	if cfg.Model == "" {
		cfg.Model = "accounts/fireworks/models/deepseek-v3-0324"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Service{cfg: cfg, client: client, logger: log, metrics: m}
}

// Classify recognizes the intent behind query.
func (s *Service) Classify(ctx context.Context, query string) model.IntentResult {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ClassifierLatency.Observe(time.Since(start).Seconds())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.client.Complete(ctx, llm.CompletionRequest{
		Model:       s.cfg.Model,
		Prompt:      fmt.Sprintf("<system>%s</system>\n\n<user>用户查询: \"%s\"</user>\n\n<assistant>", systemPrompt, query),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		Stop:        []string{"</assistant>"},
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{"error": err.Error()}).Warn("intent classification failed, using default")
		s.fallback()
		return model.DefaultIntentResult()
	}

	if result, ok := parseDirect(text); ok {
		return result
	}
	if result, ok := parseExtracted(text); ok {
		return result
	}
	s.fallback()
	return model.DefaultIntentResult()
}

func (s *Service) fallback() {
	if s.metrics != nil {
		s.metrics.ClassifierFallbacks.Inc()
	}
}

// rawResult mirrors the JSON shape the model is asked to produce.
type rawResult struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities"`
	ToolType   string            `json:"toolType"`
}

// parseDirect treats the whole response as a JSON object.
func parseDirect(text string) (model.IntentResult, bool) {
	var raw rawResult
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return model.IntentResult{}, false
	}
	return normalize(raw), true
}

// parseExtracted pulls the first brace-delimited region out of a
// response that mixed JSON with commentary.
func parseExtracted(text string) (model.IntentResult, bool) {
	match := jsonObjectRe.FindString(text)
	if match == "" {
		return model.IntentResult{}, false
	}
	var raw rawResult
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return model.IntentResult{}, false
	}
	return normalize(raw), true
}

// normalize fills missing fields with the general-medical defaults and
// coerces unknown tool types to search.
func normalize(raw rawResult) model.IntentResult {
	result := model.IntentResult{
		Intent:     model.IntentType(raw.Intent),
		Confidence: raw.Confidence,
		Entities:   raw.Entities,
		ToolType:   model.ParseToolType(raw.ToolType),
	}
	if raw.Intent == "" {
		result.Intent = model.IntentGeneralMedical
	}
	if raw.Confidence == 0 {
		result.Confidence = 0.5
	}
	if raw.Entities == nil {
		result.Entities = map[string]string{}
	}
	return result
}
