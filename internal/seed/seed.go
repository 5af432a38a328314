// Package seed holds the demo data a fresh storefront starts with.
package seed

import (
	"time"

	"restaurant-storefront/internal/domain"
)

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Шашлык из баранины",
			Description: "Сочный шашлык из отборной баранины, маринованный по особому рецепту, подается с маринованным луком и соусом.",
			Price:       650,
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Основные блюда",
			Available:   true,
			Featured:    true,
		},
		{
			ID:          "p2",
			Name:        "Долма",
			Description: "Традиционное блюдо из виноградных листьев с начинкой из риса и мяса, приправленное ароматными специями.",
			Price:       450,
			Image:       "https://images.unsplash.com/photo-1606851091851-e8c8c0fca5ba?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Основные блюда",
			Available:   true,
		},
		{
			ID:          "p3",
			Name:        "Хинкали",
			Description: "Сочные грузинские пельмени с начинкой из говядины и свинины, приправленные зеленью и специями.",
			Price:       480,
			Image:       "https://images.unsplash.com/photo-1610057099431-d73a1c9d2f2f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Основные блюда",
			Available:   true,
			Featured:    true,
		},
		{
			ID:          "p4",
			Name:        "Чахохбили",
			Description: "Традиционное грузинское блюдо из курицы, тушенной с помидорами, луком и ароматными травами.",
			Price:       520,
			Image:       "https://images.unsplash.com/photo-1547496502-affa22d38842?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Основные блюда",
			Available:   true,
		},
		{
			ID:          "p5",
			Name:        "Сациви",
			Description: "Холодная закуска из курицы в ореховом соусе с ароматными специями.",
			Price:       380,
			Image:       "https://images.unsplash.com/photo-1608835291093-394b0c943a75?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Закуски",
			Available:   true,
		},
		{
			ID:          "p6",
			Name:        "Пхали",
			Description: "Ассорти из овощных закусок с ореховой пастой и специями.",
			Price:       320,
			Image:       "https://images.unsplash.com/photo-1609501676725-7186f017a4b5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Закуски",
			Available:   true,
		},
		{
			ID:          "p7",
			Name:        "Аджапсандали",
			Description: "Овощное рагу из баклажанов, перца, помидоров и зелени.",
			Price:       350,
			Image:       "https://images.unsplash.com/photo-1505575967455-40e256f73376?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Закуски",
			Available:   true,
			Featured:    true,
		},
		{
			ID:          "p8",
			Name:        "Харчо",
			Description: "Острый суп с говядиной, рисом, грецкими орехами и ароматными специями.",
			Price:       380,
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Супы",
			Available:   true,
		},
		{
			ID:          "p9",
			Name:        "Чихиртма",
			Description: "Традиционный грузинский суп из курицы с яично-лимонной заправкой.",
			Price:       350,
			Image:       "https://images.unsplash.com/photo-1604152135912-04a022e23696?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Супы",
			Available:   true,
		},
		{
			ID:          "p10",
			Name:        "Пахлава",
			Description: "Слоеный десерт с орехами, медом и специями.",
			Price:       280,
			Image:       "https://images.unsplash.com/photo-1519915028121-7d3463d5b1ff?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Десерты",
			Available:   true,
		},
		{
			ID:          "p11",
			Name:        "Чурчхела",
			Description: "Традиционная грузинская сладость из орехов и виноградного сока.",
			Price:       250,
			Image:       "https://images.unsplash.com/photo-1515467837915-15c4777cc462?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Десерты",
			Available:   true,
		},
		{
			ID:          "p12",
			Name:        "Тархун",
			Description: "Традиционный грузинский лимонад из эстрагона.",
			Price:       180,
			Image:       "https://images.unsplash.com/photo-1536935338788-846bb9981813?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Напитки",
			Available:   true,
		},
		{
			ID:          "p13",
			Name:        "Компот из фруктов",
			Description: "Освежающий напиток из сезонных фруктов.",
			Price:       150,
			Image:       "https://images.unsplash.com/photo-1563041219-83a6d8617fc7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Напитки",
			Available:   true,
		},
		{
			ID:          "p14",
			Name:        "Вино домашнее",
			Description: "Красное или белое домашнее вино по традиционному рецепту.",
			Price:       350,
			Image:       "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Напитки",
			Available:   true,
			Featured:    true,
		},
	}
}

// Orders returns the demo order history. Item snapshots reference the
// products by position in Products.
func Orders() []domain.Order {
	p := Products()
	return []domain.Order{
		{
			ID:     "o1",
			UserID: "u1",
			Items: []domain.CartItem{
				{Product: p[0], Quantity: 2},
				{Product: p[4], Quantity: 1},
			},
			Status:    domain.StatusDelivered,
			Total:     1680,
			CreatedAt: at("2023-12-10T14:30"),
			UpdatedAt: at("2023-12-10T18:45"),
		},
		{
			ID:     "o2",
			UserID: "u1",
			Items: []domain.CartItem{
				{Product: p[2], Quantity: 3},
				{Product: p[8], Quantity: 1},
			},
			Status:    domain.StatusShipped,
			Total:     1790,
			CreatedAt: at("2024-01-15T12:15"),
			UpdatedAt: at("2024-01-15T16:20"),
		},
		{
			ID:     "o3",
			UserID: "u1",
			Items: []domain.CartItem{
				{Product: p[9], Quantity: 2},
				{Product: p[13], Quantity: 1},
			},
			Status:    domain.StatusProcessing,
			Total:     910,
			CreatedAt: at("2024-02-20T10:00"),
			UpdatedAt: at("2024-02-20T10:30"),
		},
		{
			ID:     "o4",
			UserID: "u2",
			Items: []domain.CartItem{
				{Product: p[1], Quantity: 1},
				{Product: p[5], Quantity: 1},
				{Product: p[11], Quantity: 2},
			},
			Status:    domain.StatusDelivered,
			Total:     1130,
			CreatedAt: at("2023-11-05T18:20"),
			UpdatedAt: at("2023-11-05T22:15"),
		},
		{
			ID:     "o5",
			UserID: "u2",
			Items: []domain.CartItem{
				{Product: p[3], Quantity: 2},
				{Product: p[7], Quantity: 1},
			},
			Status:    domain.StatusConfirmed,
			Total:     1420,
			CreatedAt: at("2024-03-01T19:45"),
			UpdatedAt: at("2024-03-01T20:10"),
		},
	}
}

func Users() []domain.User {
	p := Products()
	return []domain.User{
		{
			ID:     "u1",
			Email:  "customer@example.com",
			Name:   "Иван Петров",
			Role:   domain.RoleCustomer,
			Orders: []domain.Order{},
			SavedItems: []domain.SavedItem{
				{Product: p[6], DateAdded: at("2024-01-10T14:30")},
				{Product: p[10], DateAdded: at("2024-02-05T11:15")},
			},
		},
		{
			ID:         "u2",
			Email:      "admin@example.com",
			Name:       "Администратор",
			Role:       domain.RoleAdmin,
			Orders:     []domain.Order{},
			SavedItems: []domain.SavedItem{},
		},
	}
}

func Tables() []domain.Table {
	return []domain.Table{
		{ID: "t1", Number: 1, Capacity: 2},
		{ID: "t2", Number: 2, Capacity: 4},
		{ID: "t3", Number: 3, Capacity: 6},
		{ID: "t4", Number: 4, Capacity: 4},
		{ID: "t5", Number: 5, Capacity: 8},
		{ID: "t6", Number: 6, Capacity: 2},
	}
}
