package scoring

import "github.com/dotcommander/mindscreen/internal/types"

// Interpret maps a (scale, score) pair onto its severity tier. The
// function is a pure step function, total over all non-negative scores;
// anything above the highest boundary lands in the top tier. The switch
// over the closed scale set is exhaustive.
func Interpret(scale types.Scale, score int) types.Interpretation {
	switch scale {
	case types.ScaleAnxiety:
		return interpretAnxiety(score)
	case types.ScaleDepression:
		return interpretDepression(score)
	case types.ScaleInsomnia:
		return interpretInsomnia(score)
	}
	// Unreachable for catalog scales; keep the zero tier for safety.
	return interpretAnxiety(score)
}

func interpretAnxiety(score int) types.Interpretation {
	switch {
	case score <= 4:
		return types.Interpretation{
			Level:       types.LevelNormal,
			Description: "불안 증상이 거의 없습니다.",
			Color:       "bg-green-500",
			Lifestyle:   "현재의 좋은 생활 습관을 유지하세요.",
			Treatment:   "특별한 치료가 필요하지 않습니다.",
		}
	case score <= 9:
		return types.Interpretation{
			Level:       types.LevelMild,
			Description: "가벼운 수준의 불안이 의심됩니다.",
			Color:       "bg-yellow-500",
			Lifestyle:   "규칙적인 운동, 명상, 심호흡 등 스트레스 관리 기법을 시도해보세요.",
			Treatment:   "증상이 지속되거나 악화되면 전문가 상담을 고려해볼 수 있습니다.",
		}
	case score <= 14:
		return types.Interpretation{
			Level:       types.LevelModerate,
			Description: "중간 수준의 불안이 의심됩니다.",
			Color:       "bg-orange-500",
			Lifestyle:   "스트레스 원인을 파악하고, 전문가와 상담하여 대처 기술을 배우는 것이 좋습니다.",
			Treatment:   "상담 치료나 약물 치료 등 적극적인 개입을 고려해야 합니다.",
		}
	default:
		return types.Interpretation{
			Level:       types.LevelSevere,
			Description: "심각한 수준의 불안이 의심됩니다.",
			Color:       "bg-red-500",
			Lifestyle:   "스스로 관리하기 어려운 수준일 수 있습니다. 즉시 전문가의 도움을 받으세요.",
			Treatment:   "정신건강 전문가의 평가와 집중적인 치료가 반드시 필요합니다.",
		}
	}
}

func interpretDepression(score int) types.Interpretation {
	switch {
	case score <= 4:
		return types.Interpretation{
			Level:       types.LevelNormal,
			Description: "우울 증상이 거의 없습니다.",
			Color:       "bg-green-500",
			Lifestyle:   "균형 잡힌 식단과 꾸준한 신체 활동을 유지하세요.",
			Treatment:   "특별한 치료가 필요하지 않습니다.",
		}
	case score <= 9:
		return types.Interpretation{
			Level:       types.LevelMild,
			Description: "가벼운 수준의 우울감이 의심됩니다.",
			Color:       "bg-yellow-500",
			Lifestyle:   "햇볕을 자주 쬐고, 즐거움을 주는 활동에 참여해보세요. 사회적 관계를 유지하는 것이 중요합니다.",
			Treatment:   "상태를 지속적으로 관찰하고, 호전되지 않으면 전문가와 상담하는 것이 좋습니다.",
		}
	case score <= 14:
		return types.Interpretation{
			Level:       types.LevelModerate,
			Description: "중간 수준의 우울감이 의심됩니다.",
			Color:       "bg-orange-500",
			Lifestyle:   "혼자 해결하기보다 가족이나 친구에게 어려움을 이야기하고 도움을 요청하세요.",
			Treatment:   "상담 치료와 함께 약물 치료를 병행하는 것을 고려할 수 있습니다.",
		}
	case score <= 19:
		return types.Interpretation{
			Level:       types.LevelModeratelySevere,
			Description: "다소 심각한 수준의 우울감이 의심됩니다.",
			Color:       "bg-red-500",
			Lifestyle:   "일상 기능에 어려움이 클 수 있으므로, 중요한 결정을 미루고 전문가의 도움을 우선으로 받으세요.",
			Treatment:   "적극적인 약물 치료와 상담 치료가 필요하며, 전문가의 지속적인 관리가 중요합니다.",
		}
	default:
		return types.Interpretation{
			Level:       types.LevelSevere,
			Description: "심각한 수준의 우울감이 의심됩니다.",
			Color:       "bg-red-700",
			Lifestyle:   "자신을 돌보는 것이 매우 중요합니다. 안전한 환경에서 전문가의 지시에 따라주세요.",
			Treatment:   "입원 치료를 포함한 집중적인 정신건강의학적 치료가 시급히 필요합니다.",
		}
	}
}

func interpretInsomnia(score int) types.Interpretation {
	switch {
	case score <= 7:
		return types.Interpretation{
			Level:       types.LevelNormal,
			Description: "임상적으로 유의미한 불면증이 아닙니다.",
			Color:       "bg-green-500",
			Lifestyle:   "좋은 수면 위생(일정한 기상 시간, 자기 전 스마트폰 사용 자제 등)을 계속 실천하세요.",
			Treatment:   "특별한 치료가 필요하지 않습니다.",
		}
	case score <= 14:
		return types.Interpretation{
			Level:       types.LevelMild,
			Description: "가벼운 수준의 불면증(역치하 불면증)입니다.",
			Color:       "bg-yellow-500",
			Lifestyle:   "수면 환경을 점검하고(온도, 소음, 빛), 카페인 섭취를 줄여보세요. 낮잠은 피하는 것이 좋습니다.",
			Treatment:   "수면 위생 교육만으로 호전될 수 있습니다. 개선되지 않으면 전문가와 상담하세요.",
		}
	case score <= 21:
		return types.Interpretation{
			Level:       types.LevelModerate,
			Description: "중간 수준의 불면증이 의심됩니다.",
			Color:       "bg-orange-500",
			Lifestyle:   "잠자리에 누워 20분 이상 잠이 오지 않으면 일어나서 이완 활동(독서, 조용한 음악 감상)을 해보세요.",
			Treatment:   "불면증 인지행동치료(CBT-I)가 효과적일 수 있습니다. 전문가와 상담을 권장합니다.",
		}
	default:
		return types.Interpretation{
			Level:       types.LevelSevere,
			Description: "심각한 수준의 불면증이 의심됩니다.",
			Color:       "bg-red-500",
			Lifestyle:   "수면 문제로 인해 주간 기능 저하가 심각할 수 있습니다. 안전에 유의하고 전문가의 지시를 따르세요.",
			Treatment:   "전문적인 평가를 통해 원인 질환을 감별하고, 약물 치료를 포함한 적극적인 치료가 필요합니다.",
		}
	}
}
