// Package chat orchestrates a conversation turn. It runs a tool for the
// latest user message and streams a model answer grounded in the result.
package chat

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/pkg/llm"
	"github.com/medassist/medassist-api/pkg/logger"
	"github.com/medassist/medassist-api/pkg/metrics"
)

const systemPrompt = `你是一个专业的医疗助手，能够帮助用户解答医疗相关问题、查找医院和医生、预约就诊以及提供导航信息。

你应该使用简单易懂的中文回答用户的问题。在回答时，请参考提供的工具结果（如果有）。

如果用户询问医院信息，请提供医院的名称、地址、专科和联系方式等关键信息。
如果用户询问医生信息，请提供医生的姓名、职称、专科和简介等关键信息。
如果用户要预约医生，请确认预约的状态并提供预约的详细信息。
如果用户询问如何去医院，请提供清晰的导航指引。
如果是一般医疗咨询，请基于搜索结果提供准确的医疗信息，并引用来源。

在给出最终答案之前，请先思考分析，逐步推理。深入思考并检查你的推理过程，进行3-5个思考步骤。请将思考过程用<think>标签包裹起来，以<think>开始，以</think>结束，然后给出最终答案。`

// ToolCallInfoPrefix marks the system message carrying the machine-readable
// tool call sidecar. The web client strips it back out before display.
const ToolCallInfoPrefix = "__TOOL_CALL_INFO__:"

// ToolRunner is the slice of the tool router the orchestrator needs.
type ToolRunner interface {
	Run(ctx context.Context, query string) (*model.ToolOutcome, error)
}

// Service drives one chat turn end to end.
type Service struct {
	tools       ToolRunner
	llm         llm.Client
	toolTimeout time.Duration
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

func NewService(tools ToolRunner, client llm.Client, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		tools:       tools,
		llm:         client,
		toolTimeout: 90 * time.Second,
		logger:      log,
		metrics:     m,
	}
}

// Stream answers the conversation in req, writing data stream parts to w.
// Tool failures are swallowed: the model still answers, just without
// grounding context.
func (s *Service) Stream(ctx context.Context, req model.ChatRequest, w io.Writer) error {
	if s.metrics != nil {
		s.metrics.ChatRequests.Inc()
	}

	var toolContext string
	var toolCallInfo *model.ToolCallInfo
	if query := latestUserMessage(req.Messages); query != "" {
		toolCtx, cancel := context.WithTimeout(ctx, s.toolTimeout)
		outcome, err := s.tools.Run(toolCtx, query)
		cancel()
		if err != nil {
			s.logger.WithFields(map[string]interface{}{"error": err.Error()}).Warn("tool run failed, answering without context")
		} else {
			toolContext = formatToolContext(outcome)
			toolCallInfo = &model.ToolCallInfo{
				ToolType: outcome.ToolType,
				Params:   outcome.IntentResult.Entities,
				Result:   outcome.Result,
			}
		}
	}

	messages := s.buildMessages(req.Messages, toolContext, toolCallInfo)

	splitter := newThinkSplitter(
		func(text string) error { return writeText(w, text) },
		func(text string) error { return writeReasoning(w, text) },
	)
	if err := s.llm.StreamChat(ctx, messages, splitter.Feed); err != nil {
		if s.metrics != nil {
			s.metrics.ChatStreamFailures.Inc()
		}
		return err
	}
	if err := splitter.Flush(); err != nil {
		return err
	}
	return writeFinish(w, "stop")
}

func (s *Service) buildMessages(history []model.ChatMessage, toolContext string, info *model.ToolCallInfo) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	if toolContext != "" {
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "以下是与用户查询相关的信息:\n\n" + toolContext + "\n\n请基于上述信息回答用户的问题。引用信息时，请使用方括号引用来源编号，如[1]、[2]等。请使用简洁明了的语言。",
		})
	}
	if info != nil {
		encoded, err := json.Marshal(info)
		if err == nil {
			messages = append(messages, llm.Message{
				Role:    "system",
				Content: ToolCallInfoPrefix + string(encoded),
			})
		}
	}
	return messages
}

func latestUserMessage(messages []model.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
