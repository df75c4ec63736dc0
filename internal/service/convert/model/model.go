package model

// LikelihoodBin Категория вероятности для наглядных примеров
// Нижняя граница включается, верхняя — нет (последняя корзина включает 1)
type LikelihoodBin struct {
	Lower    float64
	Upper    float64
	Label    string
	Template string // Шаблон описания, подставляется округленный процент
}

// LikelihoodBins Упорядоченные корзины, покрывающие [0,1] без щелей и пересечений
var LikelihoodBins = []LikelihoodBin{
	{Lower: 0, Upper: 0.02, Label: "very rare", Template: "About %v in 100 — almost never happens."},
	{Lower: 0.02, Upper: 0.08, Label: "uncommon", Template: "About %v in 100 — happens now and then."},
	{Lower: 0.08, Upper: 0.2, Label: "occasional", Template: "About %v in 100 — happens from time to time."},
	{Lower: 0.2, Upper: 0.4, Label: "somewhat likely", Template: "About %v in 100 — happens more often than you might think."},
	{Lower: 0.4, Upper: 0.6, Label: "about even", Template: "About %v in 100 — close to a coin flip."},
	{Lower: 0.6, Upper: 0.8, Label: "likely", Template: "About %v in 100 — happens more often than not."},
	{Lower: 0.8, Upper: 0.95, Label: "very likely", Template: "About %v in 100 — expect it to happen."},
	{Lower: 0.95, Upper: 1, Label: "near certain", Template: "About %v in 100 — hardly ever fails."},
}

// ClassifyBin Выбор корзины для вероятности p из [0,1]
// Последняя корзина включает верхнюю границу, поэтому p=1 тоже попадает в нее
func ClassifyBin(p float64) LikelihoodBin {
	for i, bin := range LikelihoodBins {
		if p < bin.Upper || i == len(LikelihoodBins)-1 {
			return bin
		}
	}
	// Недостижимо, корзины покрывают весь диапазон
	return LikelihoodBins[len(LikelihoodBins)-1]
}
