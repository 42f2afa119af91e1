package chat

import (
	"fmt"
	"strings"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/internal/service/navigation"
)

// formatToolContext renders a tool result as the Chinese context block the
// model is asked to ground its answer in. Returns "" when the result has
// nothing to show.
func formatToolContext(outcome *model.ToolOutcome) string {
	switch result := outcome.Result.(type) {
	case model.HospitalList:
		if len(result.Hospitals) == 0 {
			return ""
		}
		blocks := make([]string, 0, len(result.Hospitals))
		for i, h := range result.Hospitals {
			blocks = append(blocks, fmt.Sprintf(
				"医院 [%d]:\n名称: %s\n地址: %s\n评分: %v\n专科: %s\n描述: %s\n联系电话: %s\n---",
				i+1, h.Name, h.Address, h.Rating, strings.Join(h.Specialties, ", "), h.Description, h.ContactInfo.Phone))
		}
		return "医院查询结果:\n\n" + strings.Join(blocks, "\n\n")

	case model.DoctorList:
		if len(result.Doctors) == 0 {
			return ""
		}
		blocks := make([]string, 0, len(result.Doctors))
		for i, d := range result.Doctors {
			blocks = append(blocks, fmt.Sprintf(
				"医生 [%d]:\n姓名: %s\n职称: %s\n专科: %s\n评分: %v\n简介: %s\n---",
				i+1, d.Name, d.Title, d.Specialty, d.Rating, d.Biography))
		}
		return "医生查询结果:\n\n" + strings.Join(blocks, "\n\n")

	case *model.BookingResult:
		if !result.Success || result.Appointment == nil {
			return ""
		}
		a, d, h := result.Appointment, result.Doctor, result.Hospital
		return fmt.Sprintf(
			"预约信息:\n\n预约状态: %s\n患者姓名: %s\n医生: %s (%s)\n医院: %s\n时间: %s %s-%s\n预约号: %s",
			result.Message, a.PatientName, d.Name, d.Title, h.Name,
			a.TimeSlot.Day, a.TimeSlot.StartTime, a.TimeSlot.EndTime, a.ID)

	case *navigation.Result:
		nav, h := result.Navigation, result.Hospital
		steps := make([]string, 0, len(nav.Steps))
		for i, s := range nav.Steps {
			steps = append(steps, fmt.Sprintf("%d. %s (%s, %s)", i+1, s.Instruction, s.Distance, s.Duration))
		}
		return fmt.Sprintf(
			"导航信息:\n\n目的地: %s (%s)\n距离: %s\n预计时间: %s\n\n路线指引:\n%s",
			h.Name, h.Address, nav.Distance, nav.Duration, strings.Join(steps, "\n"))

	case *model.SearchResponse:
		if len(result.Results) == 0 {
			return ""
		}
		blocks := make([]string, 0, len(result.Results))
		for i, r := range result.Results {
			var b strings.Builder
			fmt.Fprintf(&b, "来源 [%d]:\n标题: %s\n网址: %s\n", i+1, r.Title, r.URL)
			if r.Author != "" {
				fmt.Fprintf(&b, "作者: %s\n", r.Author)
			}
			if r.PublishedDate != "" {
				fmt.Fprintf(&b, "日期: %s\n", r.PublishedDate)
			}
			fmt.Fprintf(&b, "内容: %s\n---", r.Text)
			blocks = append(blocks, b.String())
		}
		return "网络搜索结果:\n\n" + strings.Join(blocks, "\n\n")

	default:
		return ""
	}
}
