// Package data bundles the read-only room reference dataset used by the demo
// mode: page rendering and the mock API both draw from it, neither mutates it.
package data

import "brf/models"

var Rooms = []models.Room{
	{
		ID:          "room-1",
		Name:        "single economy",
		Slug:        "single-economy",
		Type:        "single",
		Price:       150,
		Size:        200,
		Capacity:    1,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Street-side single with a queen bed, work desk and city view. Ideal for the solo traveller on a budget.",
		Images:      []string{"/images/jpeg/room-1.jpeg", "/images/jpeg/details-1.jpeg"},
	},
	{
		ID:          "room-2",
		Name:        "single basic",
		Slug:        "single-basic",
		Type:        "single",
		Price:       200,
		Size:        250,
		Capacity:    1,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Garden-facing single with a queen bed and a reading corner, one floor above the pool deck.",
		Images:      []string{"/images/jpeg/room-2.jpeg", "/images/jpeg/details-2.jpeg"},
	},
	{
		ID:          "room-3",
		Name:        "single standard",
		Slug:        "single-standard",
		Type:        "single",
		Price:       250,
		Size:        300,
		Capacity:    1,
		Pets:        true,
		Breakfast:   false,
		Featured:    false,
		Description: "Pet-friendly single with partial sea view and a small balcony overlooking the promenade.",
		Images:      []string{"/images/jpeg/room-3.jpeg", "/images/jpeg/details-3.jpeg"},
	},
	{
		ID:          "room-4",
		Name:        "single deluxe",
		Slug:        "single-deluxe",
		Type:        "single",
		Price:       300,
		Size:        400,
		Capacity:    1,
		Pets:        false,
		Breakfast:   true,
		Featured:    false,
		Description: "Top-floor single with a king bed, rain shower and breakfast served on the terrace.",
		Images:      []string{"/images/jpeg/room-4.jpeg", "/images/jpeg/details-4.jpeg"},
	},
	{
		ID:          "room-5",
		Name:        "double economy",
		Slug:        "double-economy",
		Type:        "double",
		Price:       250,
		Size:        300,
		Capacity:    2,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Two twin beds by the east wing stairwell, a short walk from the beach gate.",
		Images:      []string{"/images/jpeg/room-5.jpeg", "/images/jpeg/details-5.jpeg"},
	},
	{
		ID:          "room-6",
		Name:        "double basic",
		Slug:        "double-basic",
		Type:        "double",
		Price:       300,
		Size:        350,
		Capacity:    2,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Queen bed with a sofa, mini fridge and a view over the tennis courts.",
		Images:      []string{"/images/jpeg/room-6.jpeg", "/images/jpeg/details-6.jpeg"},
	},
	{
		ID:          "room-7",
		Name:        "double standard",
		Slug:        "double-standard",
		Type:        "double",
		Price:       350,
		Size:        400,
		Capacity:    2,
		Pets:        true,
		Breakfast:   false,
		Featured:    false,
		Description: "Pet-friendly double with a king bed and a wide balcony facing the bay.",
		Images:      []string{"/images/jpeg/room-7.jpeg", "/images/jpeg/details-7.jpeg"},
	},
	{
		ID:          "room-8",
		Name:        "double deluxe",
		Slug:        "double-deluxe",
		Type:        "double",
		Price:       400,
		Size:        500,
		Capacity:    2,
		Pets:        false,
		Breakfast:   true,
		Featured:    true,
		Description: "Corner suite with a king bed, whirlpool tub and full sea view. Breakfast included.",
		Images:      []string{"/images/jpeg/room-8.jpeg", "/images/jpeg/details-8.jpeg"},
	},
	{
		ID:          "room-9",
		Name:        "family economy",
		Slug:        "family-economy",
		Type:        "family",
		Price:       350,
		Size:        500,
		Capacity:    3,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Queen bed plus a single, with a kitchenette and direct access to the garden.",
		Images:      []string{"/images/jpeg/room-9.jpeg", "/images/jpeg/details-9.jpeg"},
	},
	{
		ID:          "room-10",
		Name:        "family basic",
		Slug:        "family-basic",
		Type:        "family",
		Price:       400,
		Size:        550,
		Capacity:    4,
		Pets:        false,
		Breakfast:   false,
		Featured:    false,
		Description: "Two connecting rooms with a queen and two twins, steps from the kids' pool.",
		Images:      []string{"/images/jpeg/room-10.jpeg", "/images/jpeg/details-10.jpeg"},
	},
	{
		ID:          "room-11",
		Name:        "family standard",
		Slug:        "family-standard",
		Type:        "family",
		Price:       500,
		Size:        650,
		Capacity:    5,
		Pets:        true,
		Breakfast:   false,
		Featured:    false,
		Description: "Ground-floor family suite with a fenced patio, pet friendly and stroller accessible.",
		Images:      []string{"/images/jpeg/room-11.jpeg", "/images/jpeg/details-11.jpeg"},
	},
	{
		ID:          "room-12",
		Name:        "family deluxe",
		Slug:        "family-deluxe",
		Type:        "family",
		Price:       600,
		Size:        700,
		Capacity:    6,
		Pets:        true,
		Breakfast:   true,
		Featured:    true,
		Description: "Two-bedroom suite with a living room, dining corner and panoramic ocean terrace.",
		Images:      []string{"/images/jpeg/room-12.jpeg", "/images/jpeg/details-12.jpeg"},
	},
	{
		ID:          "room-13",
		Name:        "presidential",
		Slug:        "presidential-room",
		Type:        "presidential",
		Price:       800,
		Size:        1000,
		Capacity:    10,
		Pets:        true,
		Breakfast:   true,
		Featured:    true,
		Description: "The flagship suite: private elevator, rooftop plunge pool, butler service and room for the whole party.",
		Images:      []string{"/images/jpeg/room-13.jpeg", "/images/jpeg/details-13.jpeg"},
	},
}
