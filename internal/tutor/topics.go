package tutor

import (
	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/progress"
)

// topicCatalog lists the suggested topics per grade, following the school
// curriculum order. Free-form topics typed by the learner are also accepted;
// this catalog only feeds the picker.
var topicCatalog = map[chat.Grade][]string{
	chat.Grade5: {
		"Натурал сандар",
		"Жай бөлшектер",
		"Ондық бөлшектер",
		"Мәтінді есептер",
		"Пайыздар",
	},
	chat.Grade6: {
		"Рационал сандар",
		"Қатынас пен пропорция",
		"Теңдеулер",
		"Координаталық жазықтық",
	},
	chat.Grade7: {
		"Алгебралық өрнектер",
		"Дәреже және оның қасиеттері",
		"Сызықтық теңдеулер жүйесі",
		"Функция және график",
	},
	chat.Grade8: {
		"Квадрат түбірлер",
		"Квадрат теңдеулер",
		"Теңсіздіктер",
		"Төртбұрыштар",
	},
	chat.Grade9: {
		"Квадраттық функция",
		"Тізбектер мен прогрессиялар",
		"Тригонометрия негіздері",
		"Ұқсас үшбұрыштар",
	},
	chat.Grade10: {
		"Тригонометриялық функциялар",
		"Туынды",
		"Стереометрия: тік бұрышты фигуралар",
		"Көрсеткіштік функция",
	},
	chat.Grade11: {
		"Алғашқы функция мен интеграл",
		"Логарифмдік теңдеулер",
		"Ықтималдық және статистика",
		"Айналу денелері",
	},
}

// TopicsFor returns the suggested topics for a grade, always headed by the
// general catch-all topic.
func TopicsFor(grade chat.Grade) []string {
	out := []string{progress.DefaultTopic}
	out = append(out, topicCatalog[grade]...)
	return out
}
