package memory

import "github.com/medassist/medassist-api/internal/model"

func slot(day, start, end string) model.TimeSlot {
	return model.TimeSlot{Day: day, StartTime: start, EndTime: end, Available: true}
}

// SeedDoctors returns the built-in doctor dataset.
func SeedDoctors() []model.Doctor {
	return []model.Doctor{
		{
			ID: "d001", Name: "亚承", HospitalID: "h001", Specialty: "cardiology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "08:00", "12:00"), slot("周三", "08:00", "12:00"), slot("周五", "13:00", "17:00")},
			Rating:       4.9,
			Education:    []string{"北京医科大学医学博士", "哈佛大学访问学者"},
			Experience:   25,
			Biography:    "亚承医生是心脏病领域的知名专家，拥有25年临床经验，专注于冠心病和心力衰竭的诊断与治疗。",
			ImageURL:     "https://example.com/images/doctors/zhangwei.jpg",
		},
		{
			ID: "d002", Name: "李娜", HospitalID: "h001", Specialty: "neurology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "08:00", "12:00"), slot("周四", "08:00", "12:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.8,
			Education:    []string{"北京协和医学院神经病学博士"},
			Experience:   18,
			Biography:    "李娜医生专注于神经系统疾病的诊断和治疗，尤其在帕金森病和阿尔茨海默病方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/lina.jpg",
		},
		{
			ID: "d003", Name: "王强", HospitalID: "h002", Specialty: "cardiology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "13:00", "17:00"), slot("周三", "13:00", "17:00"), slot("周五", "08:00", "12:00")},
			Rating:       4.9,
			Education:    []string{"上海交通大学医学院博士", "美国梅奥诊所访问学者"},
			Experience:   22,
			Biography:    "王强医生是心血管疾病领域的专家，擅长复杂心脏病的诊断和治疗，尤其在心脏介入手术方面经验丰富。",
			ImageURL:     "https://example.com/images/doctors/wangqiang.jpg",
		},
		{
			ID: "d004", Name: "赵敏", HospitalID: "h002", Specialty: "endocrinology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "13:00", "17:00"), slot("周四", "13:00", "17:00"), slot("周六", "13:00", "17:00")},
			Rating:       4.7,
			Education:    []string{"复旦大学医学院内分泌学博士"},
			Experience:   15,
			Biography:    "赵敏医生专注于糖尿病和甲状腺疾病的诊断和治疗，在内分泌代谢疾病方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/zhaomin.jpg",
		},
		{
			ID: "d005", Name: "陈明", HospitalID: "h003", Specialty: "orthopedics", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "08:00", "12:00"), slot("周二", "13:00", "17:00"), slot("周四", "08:00", "12:00")},
			Rating:       4.8,
			Education:    []string{"中山大学医学院骨科学博士", "德国柏林夏里特医学院访问学者"},
			Experience:   20,
			Biography:    "陈明医生是骨科领域的知名专家，擅长脊柱疾病和关节置换手术，在复杂骨折治疗方面有丰富的经验。",
			ImageURL:     "https://example.com/images/doctors/chenming.jpg",
		},
		{
			ID: "d006", Name: "林华", HospitalID: "h003", Specialty: "ophthalmology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周三", "08:00", "12:00"), slot("周五", "08:00", "12:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.6,
			Education:    []string{"中山大学眼科学博士"},
			Experience:   16,
			Biography:    "林华医生专注于眼科疾病的诊断和治疗，尤其在白内障和青光眼手术方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/linhua.jpg",
		},
		{
			ID: "d007", Name: "刘芳", HospitalID: "h004", Specialty: "gastroenterology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "13:00", "17:00"), slot("周三", "13:00", "17:00"), slot("周五", "13:00", "17:00")},
			Rating:       4.9,
			Education:    []string{"华中科技大学同济医学院博士", "日本东京大学访问学者"},
			Experience:   23,
			Biography:    "刘芳医生是消化系统疾病领域的专家，擅长胃肠道疾病和肝胆疾病的诊断和治疗，在内镜技术方面经验丰富。",
			ImageURL:     "https://example.com/images/doctors/liufang.jpg",
		},
		{
			ID: "d008", Name: "周健", HospitalID: "h004", Specialty: "pulmonology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "08:00", "12:00"), slot("周四", "13:00", "17:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.7,
			Education:    []string{"华中科技大学同济医学院呼吸病学博士"},
			Experience:   17,
			Biography:    "周健医生专注于呼吸系统疾病的诊断和治疗，尤其在慢性阻塞性肺疾病和肺部感染方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/zhoujian.jpg",
		},
		{
			ID: "d009", Name: "杨丽", HospitalID: "h005", Specialty: "pediatrics", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "08:00", "12:00"), slot("周三", "08:00", "12:00"), slot("周五", "08:00", "12:00")},
			Rating:       4.9,
			Education:    []string{"四川大学华西医学院儿科学博士", "美国波士顿儿童医院访问学者"},
			Experience:   21,
			Biography:    "杨丽医生是儿科领域的知名专家，擅长儿童常见病和疑难病的诊断和治疗，在儿童发育和免疫方面有丰富的经验。",
			ImageURL:     "https://example.com/images/doctors/yangli.jpg",
		},
		{
			ID: "d010", Name: "郑伟", HospitalID: "h005", Specialty: "gynecology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "13:00", "17:00"), slot("周四", "13:00", "17:00"), slot("周六", "13:00", "17:00")},
			Rating:       4.8,
			Education:    []string{"四川大学华西医学院妇产科学博士"},
			Experience:   19,
			Biography:    "郑伟医生专注于妇科疾病的诊断和治疗，尤其在妇科肿瘤和不孕不育方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/zhengwei.jpg",
		},
		{
			ID: "d011", Name: "孙明", HospitalID: "h006", Specialty: "orthopedics", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "13:00", "17:00"), slot("周三", "13:00", "17:00"), slot("周五", "13:00", "17:00")},
			Rating:       4.7,
			Education:    []string{"浙江大学医学院骨科学博士", "瑞士洛桑大学医院访问学者"},
			Experience:   18,
			Biography:    "孙明医生是骨科领域的专家，擅长关节疾病和运动损伤的诊断和治疗，在微创手术方面经验丰富。",
			ImageURL:     "https://example.com/images/doctors/sunming.jpg",
		},
		{
			ID: "d012", Name: "钱芳", HospitalID: "h006", Specialty: "ophthalmology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "08:00", "12:00"), slot("周四", "08:00", "12:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.6,
			Education:    []string{"浙江大学医学院眼科学博士"},
			Experience:   15,
			Biography:    "钱芳医生专注于眼科疾病的诊断和治疗，尤其在近视手术和视网膜疾病方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/qianfang.jpg",
		},
		{
			ID: "d013", Name: "吴强", HospitalID: "h007", Specialty: "cardiology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "08:00", "12:00"), slot("周三", "08:00", "12:00"), slot("周五", "08:00", "12:00")},
			Rating:       4.8,
			Education:    []string{"天津医科大学心血管病学博士", "德国慕尼黑大学医学中心访问学者"},
			Experience:   24,
			Biography:    "吴强医生是心脏病领域的知名专家，擅长心脏介入手术和心律失常的诊断与治疗，在复杂心脏病例方面有丰富的经验。",
			ImageURL:     "https://example.com/images/doctors/wuqiang.jpg",
		},
		{
			ID: "d014", Name: "郭丽", HospitalID: "h007", Specialty: "oncology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "13:00", "17:00"), slot("周四", "13:00", "17:00"), slot("周六", "13:00", "17:00")},
			Rating:       4.7,
			Education:    []string{"天津医科大学肿瘤学博士"},
			Experience:   16,
			Biography:    "郭丽医生专注于肿瘤疾病的诊断和治疗，尤其在乳腺癌和肺癌方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/guoli.jpg",
		},
		{
			ID: "d015", Name: "徐明", HospitalID: "h008", Specialty: "gastroenterology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "13:00", "17:00"), slot("周三", "13:00", "17:00"), slot("周五", "13:00", "17:00")},
			Rating:       4.6,
			Education:    []string{"南京医科大学消化病学博士", "美国约翰霍普金斯大学访问学者"},
			Experience:   20,
			Biography:    "徐明医生是消化系统疾病领域的专家，擅长胃肠道疾病和肝胆疾病的诊断和治疗，在内镜技术方面经验丰富。",
			ImageURL:     "https://example.com/images/doctors/xuming.jpg",
		},
		{
			ID: "d016", Name: "张丽", HospitalID: "h008", Specialty: "nephrology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "08:00", "12:00"), slot("周四", "08:00", "12:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.5,
			Education:    []string{"南京医科大学肾脏病学博士"},
			Experience:   14,
			Biography:    "张丽医生专注于肾脏疾病的诊断和治疗，尤其在慢性肾病和肾小球肾炎方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/zhangli.jpg",
		},
		{
			ID: "d017", Name: "王刚", HospitalID: "h009", Specialty: "neurology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "08:00", "12:00"), slot("周三", "08:00", "12:00"), slot("周五", "08:00", "12:00")},
			Rating:       4.7,
			Education:    []string{"西安交通大学医学院神经病学博士", "加拿大多伦多大学访问学者"},
			Experience:   22,
			Biography:    "王刚医生是神经系统疾病领域的知名专家，擅长脑血管疾病和神经退行性疾病的诊断与治疗，在脑卒中方面有丰富的经验。",
			ImageURL:     "https://example.com/images/doctors/wanggang.jpg",
		},
		{
			ID: "d018", Name: "李明", HospitalID: "h009", Specialty: "tcm", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "13:00", "17:00"), slot("周四", "13:00", "17:00"), slot("周六", "13:00", "17:00")},
			Rating:       4.6,
			Education:    []string{"陕西中医药大学中医内科学博士"},
			Experience:   18,
			Biography:    "李明医生专注于中医内科疾病的诊断和治疗，尤其在中医调理慢性病方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/liming.jpg",
		},
		{
			ID: "d019", Name: "张强", HospitalID: "h010", Specialty: "cardiology", Title: "主任医师",
			Availability: []model.TimeSlot{slot("周一", "13:00", "17:00"), slot("周三", "13:00", "17:00"), slot("周五", "13:00", "17:00")},
			Rating:       4.6,
			Education:    []string{"哈尔滨医科大学心血管病学博士", "俄罗斯莫斯科大学访问学者"},
			Experience:   19,
			Biography:    "张强医生是心脏病领域的专家，擅长冠心病和心力衰竭的诊断与治疗，在心脏介入手术方面经验丰富。",
			ImageURL:     "https://example.com/images/doctors/zhangqiang.jpg",
		},
		{
			ID: "d020", Name: "刘洋", HospitalID: "h010", Specialty: "pulmonology", Title: "副主任医师",
			Availability: []model.TimeSlot{slot("周二", "08:00", "12:00"), slot("周四", "08:00", "12:00"), slot("周六", "08:00", "12:00")},
			Rating:       4.5,
			Education:    []string{"哈尔滨医科大学呼吸病学博士"},
			Experience:   15,
			Biography:    "刘洋医生专注于呼吸系统疾病的诊断和治疗，尤其在慢性阻塞性肺疾病和肺部感染方面有丰富的临床经验。",
			ImageURL:     "https://example.com/images/doctors/liuyang.jpg",
		},
	}
}
