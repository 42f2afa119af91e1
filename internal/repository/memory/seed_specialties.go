package memory

import "github.com/medassist/medassist-api/internal/model"

// SeedSpecialties returns the built-in specialty enumeration.
func SeedSpecialties() []model.Specialty {
	return []model.Specialty{
		{ID: "cardiology", Name: "心脏科", Description: "诊断和治疗心脏疾病，包括冠心病、心力衰竭、心律失常等。"},
		{ID: "neurology", Name: "神经科", Description: "诊断和治疗神经系统疾病，包括脑部、脊髓和周围神经疾病。"},
		{ID: "orthopedics", Name: "骨科", Description: "诊断和治疗骨骼、关节、肌肉、韧带和肌腱的疾病和损伤。"},
		{ID: "gastroenterology", Name: "消化内科", Description: "诊断和治疗消化系统疾病，包括食道、胃、肠、肝脏、胆囊和胰腺疾病。"},
		{ID: "dermatology", Name: "皮肤科", Description: "诊断和治疗皮肤、头发和指甲的疾病。"},
		{ID: "ophthalmology", Name: "眼科", Description: "诊断和治疗眼睛疾病和视力问题。"},
		{ID: "ent", Name: "耳鼻喉科", Description: "诊断和治疗耳朵、鼻子、喉咙、头部和颈部的疾病。"},
		{ID: "gynecology", Name: "妇科", Description: "诊断和治疗女性生殖系统疾病。"},
		{ID: "urology", Name: "泌尿科", Description: "诊断和治疗泌尿系统疾病，包括肾脏、膀胱和前列腺疾病。"},
		{ID: "pediatrics", Name: "儿科", Description: "诊断和治疗儿童疾病。"},
		{ID: "endocrinology", Name: "内分泌科", Description: "诊断和治疗内分泌系统疾病，包括糖尿病、甲状腺疾病等。"},
		{ID: "oncology", Name: "肿瘤科", Description: "诊断和治疗癌症。"},
		{ID: "psychiatry", Name: "精神科", Description: "诊断和治疗精神疾病，包括抑郁症、焦虑症、精神分裂症等。"},
		{ID: "pulmonology", Name: "呼吸内科", Description: "诊断和治疗肺部和呼吸系统疾病。"},
		{ID: "rheumatology", Name: "风湿科", Description: "诊断和治疗风湿性疾病，包括关节炎、自身免疫性疾病等。"},
		{ID: "nephrology", Name: "肾脏科", Description: "诊断和治疗肾脏疾病。"},
		{ID: "hematology", Name: "血液科", Description: "诊断和治疗血液疾病。"},
		{ID: "dentistry", Name: "牙科", Description: "诊断和治疗牙齿和口腔疾病。"},
		{ID: "emergency", Name: "急诊科", Description: "处理需要紧急医疗护理的情况。"},
		{ID: "tcm", Name: "中医科", Description: "使用传统中医方法诊断和治疗疾病。"},
	}
}
