package memory

import "github.com/medassist/medassist-api/internal/model"

// SeedHospitals returns the built-in hospital dataset.
func SeedHospitals() []model.Hospital {
	return []model.Hospital{
		{
			ID:          "h012",
			Name:        "第七人民医院",
			Address:     "上海市浦东新区大同路200号",
			Specialties: []string{"orthopedics", "neurology", "cardiology", "pediatrics", "emergency"},
			Rating:      4.7,
			Description: "上海市第七人民医院是一家综合性三级医院，在骨科和神经科领域有较高声誉，同时提供全面的儿科服务。",
			Location:    model.GeoLocation{Latitude: 31.2456, Longitude: 121.5123},
			ContactInfo: model.ContactInfo{Phone: "021-58858999", Email: "info@seventh-hospital.org.cn", Website: "https://www.seventh-hospital.org.cn"},
			ImageURL:    "https://example.com/images/hospitals/seventh-hospital.jpg",
		},
		{
			ID:          "h011",
			Name:        "第六人民医院",
			Address:     "上海市徐汇区宜山路600号",
			Specialties: []string{"endocrinology", "orthopedics", "cardiology", "neurology", "gastroenterology"},
			Rating:      4.8,
			Description: "上海市第六人民医院是一家三级甲等综合性医院，在内分泌和代谢疾病方面尤为专长，是上海市糖尿病研究所所在地。",
			Location:    model.GeoLocation{Latitude: 31.1773, Longitude: 121.4217},
			ContactInfo: model.ContactInfo{Phone: "021-64369181", Email: "info@sixth-hospital.org.cn", Website: "https://www.sixth-hospital.org.cn"},
			ImageURL:    "https://example.com/images/hospitals/sixth-hospital.jpg",
		},
		{
			ID:          "h001",
			Name:        "北京协和医院",
			Address:     "北京市东城区帅府园1号",
			Specialties: []string{"cardiology", "neurology", "oncology", "orthopedics", "gastroenterology"},
			Rating:      5,
			Description: "北京协和医院是中国最著名的综合性医院之一，拥有一流的医疗设备和专业团队，提供高质量的医疗服务。",
			Location:    model.GeoLocation{Latitude: 39.9123, Longitude: 116.4171},
			ContactInfo: model.ContactInfo{Phone: "010-69156114", Email: "contact@pumch.cn", Website: "https://www.pumch.cn"},
			ImageURL:    "https://example.com/images/hospitals/pumch.jpg",
		},
		{
			ID:          "h002",
			Name:        "上海瑞金医院",
			Address:     "上海市瑞金二路197号",
			Specialties: []string{"cardiology", "endocrinology", "nephrology", "rheumatology", "hematology"},
			Rating:      4.9,
			Description: "上海瑞金医院是一家三级甲等综合性医院，在心血管疾病、内分泌疾病等领域具有很高的声誉。",
			Location:    model.GeoLocation{Latitude: 31.2152, Longitude: 121.4717},
			ContactInfo: model.ContactInfo{Phone: "021-64370045", Email: "info@rjh.com.cn", Website: "https://www.rjh.com.cn"},
			ImageURL:    "https://example.com/images/hospitals/rjh.jpg",
		},
		{
			ID:          "h003",
			Name:        "广州南方医院",
			Address:     "广州市白云区广州大道北1838号",
			Specialties: []string{"orthopedics", "neurology", "ophthalmology", "ent", "dermatology"},
			Rating:      4.7,
			Description: "广州南方医院是华南地区的重点医院，拥有先进的医疗设备和技术，在骨科和神经科领域尤为突出。",
			Location:    model.GeoLocation{Latitude: 23.1924, Longitude: 113.2699},
			ContactInfo: model.ContactInfo{Phone: "020-62787333", Email: "service@nfyy.com", Website: "https://www.nfyy.com"},
			ImageURL:    "https://example.com/images/hospitals/nfyy.jpg",
		},
		{
			ID:          "h004",
			Name:        "武汉同济医院",
			Address:     "武汉市硚口区解放大道1095号",
			Specialties: []string{"gastroenterology", "pulmonology", "urology", "oncology", "cardiology"},
			Rating:      4.8,
			Description: "武汉同济医院是华中地区的顶级医院，在消化系统疾病和肺部疾病治疗方面处于国内领先水平。",
			Location:    model.GeoLocation{Latitude: 30.5857, Longitude: 114.2694},
			ContactInfo: model.ContactInfo{Phone: "027-83662688", Email: "info@tjh.com.cn", Website: "https://www.tjh.com.cn"},
			ImageURL:    "https://example.com/images/hospitals/tjh.jpg",
		},
		{
			ID:          "h005",
			Name:        "成都华西医院",
			Address:     "成都市武侯区国学巷37号",
			Specialties: []string{"pediatrics", "gynecology", "oncology", "dentistry", "tcm"},
			Rating:      4.9,
			Description: "成都华西医院是西南地区规模最大的医院之一，在儿科和妇科方面拥有丰富的经验和专业知识。",
			Location:    model.GeoLocation{Latitude: 30.6421, Longitude: 104.0411},
			ContactInfo: model.ContactInfo{Phone: "028-85422114", Email: "service@wchscu.cn", Website: "https://www.wchscu.cn"},
			ImageURL:    "https://example.com/images/hospitals/wchscu.jpg",
		},
		{
			ID:          "h006",
			Name:        "浙江邵逸夫医院",
			Address:     "杭州市庆春东路3号",
			Specialties: []string{"orthopedics", "neurology", "cardiology", "ophthalmology", "endocrinology"},
			Rating:      4.6,
			Description: "浙江邵逸夫医院是一家现代化综合性医院，在骨科和神经科手术方面有很高的成功率。",
			Location:    model.GeoLocation{Latitude: 30.2591, Longitude: 120.1737},
			ContactInfo: model.ContactInfo{Phone: "0571-86006666", Email: "contact@srrsh.com", Website: "https://www.srrsh.com"},
			ImageURL:    "https://example.com/images/hospitals/srrsh.jpg",
		},
		{
			ID:          "h007",
			Name:        "天津医科大学总医院",
			Address:     "天津市和平区鞍山道154号",
			Specialties: []string{"cardiology", "oncology", "urology", "neurology", "emergency"},
			Rating:      4.7,
			Description: "天津医科大学总医院是天津市最大的综合性医院，在心脏病和癌症治疗方面拥有先进的技术和设备。",
			Location:    model.GeoLocation{Latitude: 39.1088, Longitude: 117.1935},
			ContactInfo: model.ContactInfo{Phone: "022-60362255", Email: "info@tmugs.com", Website: "https://www.tmugs.com"},
			ImageURL:    "https://example.com/images/hospitals/tmugs.jpg",
		},
		{
			ID:          "h008",
			Name:        "南京鼓楼医院",
			Address:     "南京市中山路321号",
			Specialties: []string{"gastroenterology", "nephrology", "hematology", "rheumatology", "endocrinology"},
			Rating:      4.5,
			Description: "南京鼓楼医院是江苏省重点医院，在消化系统疾病和肾脏疾病治疗方面有丰富的经验。",
			Location:    model.GeoLocation{Latitude: 32.0584, Longitude: 118.7812},
			ContactInfo: model.ContactInfo{Phone: "025-83106666", Email: "service@njglyy.com", Website: "https://www.njglyy.com"},
			ImageURL:    "https://example.com/images/hospitals/njglyy.jpg",
		},
		{
			ID:          "h009",
			Name:        "西安交通大学第一附属医院",
			Address:     "西安市雁塔西路277号",
			Specialties: []string{"cardiology", "neurology", "orthopedics", "ophthalmology", "tcm"},
			Rating:      4.6,
			Description: "西安交通大学第一附属医院是西北地区的重点医院，在心脏病和神经系统疾病治疗方面处于领先地位。",
			Location:    model.GeoLocation{Latitude: 34.2486, Longitude: 108.9841},
			ContactInfo: model.ContactInfo{Phone: "029-85323112", Email: "contact@xjtu1.com", Website: "https://www.xjtu1.com"},
			ImageURL:    "https://example.com/images/hospitals/xjtu1.jpg",
		},
		{
			ID:          "h010",
			Name:        "哈尔滨医科大学附属第一医院",
			Address:     "哈尔滨市南岗区邮政街23号",
			Specialties: []string{"cardiology", "oncology", "pulmonology", "gastroenterology", "emergency"},
			Rating:      4.5,
			Description: "哈尔滨医科大学附属第一医院是东北地区的重点医院，在心脏病和肺部疾病治疗方面有很高的声誉。",
			Location:    model.GeoLocation{Latitude: 45.7484, Longitude: 126.6426},
			ContactInfo: model.ContactInfo{Phone: "0451-85555888", Email: "info@hrbmu1.com", Website: "https://www.hrbmu1.com"},
			ImageURL:    "https://example.com/images/hospitals/hrbmu1.jpg",
		},
	}
}
