package vparams

// paramTable is the full visual parameter catalog. Group-0 entries are
// published on the wire; group-1 entries are driven locally and feed the
// bake compositor through alpha and color descriptors.
var paramTable = [...]Param{
	{ID: 1, Name: "big_brow", Min: -0.3, Max: 2.0, Default: -0.3},
	{ID: 2, Name: "nose_big_out", Min: -0.8, Max: 2.5, Default: -0.8},
	{ID: 4, Name: "broad_nostrils", Min: -0.5, Max: 1.0, Default: -0.5},
	{ID: 5, Name: "cleft_chin", Min: -0.1, Max: 1.0, Default: -0.1},
	{ID: 6, Name: "bulbous_nose_tip", Min: -0.3, Max: 1.0, Default: -0.3},
	{ID: 7, Name: "weak_chin", Min: -0.5, Max: 0.5, Default: -0.5},
	{ID: 8, Name: "double_chin", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 10, Name: "sunken_cheeks", Min: -1.5, Max: 3.0, Default: -1.5},
	{ID: 11, Name: "noble_nose_bridge", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 12, Name: "jowls", Min: -0.5, Max: 2.5, Default: -0.5},
	{ID: 13, Name: "cleft_chin_upper", Min: 0.0, Max: 1.5, Default: 0.0},
	{ID: 14, Name: "high_cheek_bones", Min: -0.5, Max: 1.0, Default: -0.5},
	{ID: 15, Name: "ears_out", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 16, Name: "pointy_eyebrows", Min: -0.5, Max: 3.0, Default: -0.5},
	{ID: 17, Name: "square_jaw", Min: -0.5, Max: 1.0, Default: -0.5},
	{ID: 18, Name: "puffy_upper_cheeks", Min: -1.5, Max: 2.5, Default: -1.5},
	{ID: 19, Name: "upturned_nose_tip", Min: -1.5, Max: 1.0, Default: -1.5},
	{ID: 20, Name: "bulbous_nose", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 21, Name: "upper_eyelid_fold", Min: -0.2, Max: 1.3, Default: -0.2},
	{ID: 22, Name: "attached_earlobes", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 23, Name: "baggy_eyes", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 24, Name: "wide_eyes", Min: -1.5, Max: 2.0, Default: -1.5},
	{ID: 25, Name: "wide_lip_cleft", Min: -0.8, Max: 1.5, Default: -0.8},
	{ID: 27, Name: "wide_nose_bridge", Min: -1.3, Max: 1.2, Default: -1.3},
	{ID: 33, Name: "height", Min: -2.3, Max: 2.0, Default: -0.5},
	{ID: 34, Name: "thickness", Min: -0.7, Max: 1.5, Default: -0.5},
	{ID: 35, Name: "big_ears", Min: -1.0, Max: 2.0, Default: -1.0},
	{ID: 36, Name: "shoulders", Min: -0.5, Max: 1.0, Default: -0.5},
	{ID: 37, Name: "hip_width", Min: -3.2, Max: 2.8, Default: -3.2},
	{ID: 38, Name: "torso_length", Min: -1.0, Max: 1.0, Default: -1.0},
	{ID: 80, Name: "male", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 93, Name: "glove_length_bump", Min: -0.25, Max: 1.5, Default: 0.8},
	{ID: 98, Name: "eye_color", Min: 0.0, Max: 4.0, Default: 0.0},
	{ID: 99, Name: "eye_lightness", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 105, Name: "breast_size", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 108, Name: "rainbow_color", Min: 0.0, Max: 1.0, Default: 0.0, Color: &ColorSpec{Op: ColorAdd, Colors: []RGBA{{0, 0, 0, 255}, {255, 0, 255, 255}, {255, 0, 0, 255}, {255, 255, 0, 255}, {0, 255, 0, 255}, {0, 255, 255, 255}, {0, 0, 255, 255}, {255, 0, 255, 255}}}},
	{ID: 110, Name: "red_skin", Min: 0.0, Max: 0.1, Default: 0.0, Color: &ColorSpec{Op: ColorBlend, Colors: []RGBA{{218, 41, 37, 255}}}},
	{ID: 111, Name: "pigment", Min: 0.0, Max: 1.0, Default: 0.5, Color: &ColorSpec{Op: ColorBlend, Colors: []RGBA{{252, 215, 200, 255}, {240, 177, 112, 255}, {90, 40, 16, 255}, {29, 9, 6, 255}}}},
	{ID: 112, Name: "rainbow_hair_color", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 113, Name: "red_hair", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 114, Name: "blonde_hair", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 115, Name: "white_hair", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 116, Name: "rosy_complexion", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 117, Name: "lip_pinkness", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 119, Name: "eyebrow_size", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 130, Name: "front_fringe", Min: 0.0, Max: 1.0, Default: 0.45},
	{ID: 131, Name: "side_fringe", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 132, Name: "back_fringe", Min: 0.0, Max: 1.0, Default: 0.39},
	{ID: 133, Name: "hair_front", Min: 0.0, Max: 1.0, Default: 0.25},
	{ID: 134, Name: "hair_sides", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 135, Name: "hair_back", Min: 0.0, Max: 1.0, Default: 0.55},
	{ID: 136, Name: "hair_sweep", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 137, Name: "hair_tilt", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 140, Name: "hair_part_middle", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 141, Name: "hair_part_right", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 142, Name: "hair_part_left", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 143, Name: "hair_sides_full", Min: -4.0, Max: 1.5, Default: 0.125},
	{ID: 150, Name: "body_definition", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 155, Name: "lip_width", Min: -0.9, Max: 1.3, Default: 0.0},
	{ID: 157, Name: "belly_size", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 162, Name: "facial_definition", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 163, Name: "wrinkles", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 165, Name: "freckles", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 166, Name: "sideburns", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 167, Name: "moustache", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 168, Name: "soulpatch", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 169, Name: "chin_curtains", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 171, Name: "hair_front_down", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 174, Name: "hair_sides_down", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 177, Name: "hair_back_down", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 181, Name: "hair_big_front", Min: -1.0, Max: 1.0, Default: 0.14},
	{ID: 182, Name: "hair_big_top", Min: -1.0, Max: 1.0, Default: 0.7},
	{ID: 183, Name: "hair_big_back", Min: -1.0, Max: 1.0, Default: 0.05},
	{ID: 184, Name: "hair_spiked", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 185, Name: "deep_chin", Min: -1.0, Max: 1.0, Default: 0.0},
	{ID: 186, Name: "egg_head", Min: -1.3, Max: 1.0, Default: 0.0},
	{ID: 187, Name: "squash_stretch_head", Min: -0.5, Max: 1.0, Default: 0.0},
	{ID: 190, Name: "square_head", Min: 0.0, Max: 0.7, Default: 0.0},
	{ID: 193, Name: "head_shape", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 196, Name: "eye_spacing", Min: -2.0, Max: 1.0, Default: 0.0},
	{ID: 198, Name: "heel_height", Min: -1.0, Max: 1.0, Default: 0.0},
	{ID: 503, Name: "platform_height", Min: -1.0, Max: 1.0, Default: 0.0},
	{ID: 505, Name: "lip_thickness", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 506, Name: "mouth_height", Min: -2.0, Max: 2.0, Default: -0.5},
	{ID: 507, Name: "mouth_corner", Min: -2.5, Max: 1.5, Default: 0.0},
	{ID: 508, Name: "shear_back", Min: -2.0, Max: 2.0, Default: -0.3},
	{ID: 513, Name: "pointy_ears", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 514, Name: "flat_ears", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 515, Name: "nose_thickness", Min: -0.5, Max: 1.5, Default: -0.5},
	{ID: 516, Name: "upper_nose_thickness", Min: -1.0, Max: 1.5, Default: 0.0},
	{ID: 517, Name: "lower_nose_thickness", Min: -1.0, Max: 2.0, Default: -0.5},
	{ID: 518, Name: "eyelashes_long", Min: -0.3, Max: 1.5, Default: -0.3},
	{ID: 603, Name: "undershirt_sleeve_length", Min: 0.01, Max: 1.0, Default: 0.4},
	{ID: 604, Name: "undershirt_bottom", Min: 0.0, Max: 1.0, Default: 0.85},
	{ID: 605, Name: "undershirt_collar_front", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 606, Name: "jacket_open", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 607, Name: "jacket_collar_back", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 608, Name: "jacket_bottom_length_lower", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 609, Name: "jacket_open_lower", Min: 0.0, Max: 1.0, Default: 0.2},
	{ID: 616, Name: "shoe_height", Min: 0.0, Max: 1.0, Default: 0.1},
	{ID: 617, Name: "socks_length", Min: 0.0, Max: 1.0, Default: 0.35},
	{ID: 619, Name: "underpants_length", Min: 0.01, Max: 1.0, Default: 0.3},
	{ID: 622, Name: "underpants_waist", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 625, Name: "leg_pantflair", Min: 0.0, Max: 1.5, Default: 0.0},
	{ID: 626, Name: "chest_big", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 627, Name: "chest_small", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 629, Name: "forehead_round", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 633, Name: "fat_head", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 634, Name: "fat_torso", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 635, Name: "fat_legs", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 637, Name: "body_fat", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 638, Name: "low_crotch", Min: 0.0, Max: 1.3, Default: 0.0, Drivers: []int{1024}},
	{ID: 646, Name: "egg_head_forehead", Min: -1.3, Max: 1.0, Default: 0.0},
	{ID: 647, Name: "squash_stretch_forehead", Min: -0.5, Max: 1.0, Default: 0.0},
	{ID: 649, Name: "torso_muscles", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 650, Name: "eyelid_corner_up", Min: -1.3, Max: 1.2, Default: -1.3},
	{ID: 652, Name: "leg_muscles", Min: 0.0, Max: 1.5, Default: 0.5},
	{ID: 653, Name: "tall_lips", Min: -1.0, Max: 2.0, Default: 0.0},
	{ID: 654, Name: "shoe_toe_thick", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 656, Name: "crooked_nose", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 657, Name: "smile_mouth", Min: 0.0, Max: 1.4, Default: 0.0},
	{ID: 658, Name: "frown_mouth", Min: 0.0, Max: 1.2, Default: 0.0},
	{ID: 659, Name: "mouth_corner_up", Min: 0.0, Max: 1.4, Default: 0.0},
	{ID: 660, Name: "shear_head", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 661, Name: "eyes_shear_up", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 662, Name: "face_shear", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 663, Name: "shift_mouth", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 664, Name: "pop_eye", Min: -1.3, Max: 1.3, Default: 0.0},
	{ID: 665, Name: "jaw_jut", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 674, Name: "hair_shear_back", Min: -1.0, Max: 2.0, Default: -0.3},
	{ID: 675, Name: "hand_size", Min: -0.3, Max: 0.3, Default: -0.3},
	{ID: 676, Name: "love_handles", Min: -1.0, Max: 2.0, Default: 0.0},
	{ID: 678, Name: "torso_muscles_full", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 682, Name: "head_size", Min: -0.25, Max: 0.1, Default: -0.07},
	{ID: 683, Name: "neck_thickness", Min: -0.4, Max: 0.2, Default: -0.15},
	{ID: 684, Name: "breast_female_cleavage", Min: -0.3, Max: 1.3, Default: 0.0},
	{ID: 685, Name: "chest_male_no_pecs", Min: -0.5, Max: 1.1, Default: 0.0},
	{ID: 686, Name: "head_eyes_big", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 687, Name: "eyes_bugged", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 689, Name: "eyeball_size_big", Min: -0.25, Max: 0.25, Default: 0.0},
	{ID: 690, Name: "eye_size", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 691, Name: "eyeball_size_tall", Min: -0.25, Max: 0.25, Default: 0.0},
	{ID: 692, Name: "leg_length", Min: -1.0, Max: 1.0, Default: -0.5},
	{ID: 693, Name: "arm_length", Min: -1.0, Max: 1.0, Default: 0.6},
	{ID: 694, Name: "eyeball_size_wide", Min: -0.25, Max: 0.25, Default: 0.0},
	{ID: 695, Name: "eyeball_size_round", Min: -0.25, Max: 0.25, Default: 0.0},
	{ID: 699, Name: "breast_cleavage", Min: -0.3, Max: 1.3, Default: 0.0},
	{ID: 700, Name: "sleeve_length", Min: 0.01, Max: 1.0, Default: 0.7, Drivers: []int{1020}},
	{ID: 701, Name: "shirt_bottom", Min: 0.0, Max: 1.0, Default: 0.8, Drivers: []int{1021}},
	{ID: 702, Name: "collar_front", Min: 0.0, Max: 1.0, Default: 0.8, Drivers: []int{1022}},
	{ID: 726, Name: "eyelid_inner_corner_up", Min: -1.3, Max: 1.2, Default: -1.3},
	{ID: 727, Name: "jaw_angle", Min: -1.2, Max: 2.0, Default: 0.0},
	{ID: 730, Name: "hair_tilt_left", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 731, Name: "hair_tilt_right", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 733, Name: "bow_legged", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 734, Name: "platform_width", Min: -1.0, Max: 2.0, Default: 0.0},
	{ID: 735, Name: "shoe_heel_point", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 736, Name: "shoe_heel_thick", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 737, Name: "shoe_toe_point", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 738, Name: "shoe_toe_square", Min: 0.0, Max: 2.0, Default: 0.0},
	{ID: 739, Name: "big_belly_torso", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 740, Name: "big_belly_legs", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 741, Name: "belly_rolls", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 742, Name: "knock_kneed", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 743, Name: "foot_size", Min: -1.0, Max: 3.0, Default: 0.5},
	{ID: 744, Name: "glove_fingers_bump", Min: -0.25, Max: 1.5, Default: 1.0},
	{ID: 745, Name: "blush", Min: 0.0, Max: 0.9, Default: 0.0},
	{ID: 746, Name: "blush_color", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 747, Name: "blush_opacity", Min: 0.0, Max: 0.9, Default: 0.0},
	{ID: 748, Name: "lipstick", Min: 0.0, Max: 0.9, Default: 0.0},
	{ID: 749, Name: "lipstick_color", Min: 0.0, Max: 1.0, Default: 0.25},
	{ID: 750, Name: "eyeliner", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 751, Name: "eyeshadow_inner", Min: 0.0, Max: 1.0, Default: 0.2},
	{ID: 752, Name: "hair_thickness", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 753, Name: "saddlebags", Min: -0.5, Max: 3.0, Default: 0.0},
	{ID: 754, Name: "hair_taper_back", Min: -1.0, Max: 2.0, Default: 0.0},
	{ID: 755, Name: "hair_taper_front", Min: -1.5, Max: 1.5, Default: 0.05},
	{ID: 756, Name: "neck_length", Min: -1.0, Max: 1.0, Default: 0.0},
	{ID: 757, Name: "lower_eyebrows", Min: -4.0, Max: 2.0, Default: -1.0},
	{ID: 758, Name: "lower_bridge_nose", Min: -1.5, Max: 1.5, Default: 0.0},
	{ID: 759, Name: "low_septum_nose", Min: -1.0, Max: 1.5, Default: 0.5},
	{ID: 760, Name: "jaw_shape", Min: -1.2, Max: 2.0, Default: 0.0},
	{ID: 762, Name: "open_front_eyes", Min: 0.0, Max: 1.5, Default: 0.0},
	{ID: 763, Name: "hair_volume", Min: -4.0, Max: 2.0, Default: -1.1},
	{ID: 764, Name: "lip_cleft_deep", Min: -0.5, Max: 1.2, Default: -0.3},
	{ID: 765, Name: "puffy_lower_lids", Min: -0.3, Max: 2.5, Default: -0.3},
	{ID: 769, Name: "eye_depth", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 770, Name: "elongate_head", Min: 0.0, Max: 1.0, Default: 0.5},
	{ID: 772, Name: "egg_head_full", Min: -1.3, Max: 1.0, Default: 0.0},
	{ID: 773, Name: "pants_length", Min: 0.0, Max: 1.0, Default: 0.8, Drivers: []int{1023}},
	{ID: 774, Name: "shear_head_full", Min: -2.0, Max: 2.0, Default: 0.0},
	{ID: 775, Name: "body_freckles", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 778, Name: "collar_back", Min: 0.0, Max: 1.0, Default: 0.8},
	{ID: 779, Name: "waist_height", Min: 0.0, Max: 1.0, Default: 0.8, Drivers: []int{1025}},
	{ID: 780, Name: "glove_fingers_full", Min: 0.01, Max: 1.0, Default: 1.0},
	{ID: 781, Name: "glove_fingers", Min: 0.01, Max: 1.0, Default: 1.0, Drivers: []int{1027}},
	{ID: 782, Name: "hair_pigtails", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 783, Name: "hair_ponytail", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 784, Name: "hair_braids", Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 785, Name: "glove_length", Min: 0.01, Max: 1.0, Default: 0.8, Drivers: []int{1026}},
	{ID: 786, Name: "eyeshadow_outer", Min: 0.0, Max: 2.0, Default: 0.25},
	{ID: 803, Name: "shirt_red", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}}}},
	{ID: 804, Name: "shirt_green", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {0, 255, 0, 255}}}},
	{ID: 805, Name: "shirt_blue", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {0, 0, 255, 255}}}},
	{ID: 806, Name: "pants_red", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}}}},
	{ID: 807, Name: "pants_green", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {0, 255, 0, 255}}}},
	{ID: 808, Name: "pants_blue", Min: 0.0, Max: 1.0, Default: 1.0, Color: &ColorSpec{Op: ColorMultiply, Colors: []RGBA{{0, 0, 0, 255}, {0, 0, 255, 255}}}},
	{ID: 816, Name: "loose_lower_clothing", Min: 0.0, Max: 1.0, Default: 0.0, Drivers: []int{1019}},
	{ID: 828, Name: "loose_upper_clothing", Min: 0.0, Max: 1.0, Default: 0.0, Drivers: []int{1018}},
	{ID: 835, Name: "jacket_sleeve_length", Min: 0.0, Max: 1.0, Default: 0.0, Drivers: []int{1028}},
	{ID: 836, Name: "jacket_collar_front", Min: 0.0, Max: 1.0, Default: 0.0, Drivers: []int{1029}},
	{ID: 838, Name: "jacket_length", Min: 0.0, Max: 1.0, Default: 0.8, Drivers: []int{1030}},
	{ID: 842, Name: "hip_length", Min: -1.0, Max: 1.0, Default: 0.0},
	{ID: 858, Name: "skirt_length", Min: 0.01, Max: 1.0, Default: 0.4, Drivers: []int{1031}},
	{ID: 859, Name: "slit_front", Min: 0.0, Max: 1.0, Default: 1.0, Drivers: []int{1032}},
	{ID: 860, Name: "slit_back", Min: 0.0, Max: 1.0, Default: 1.0, Drivers: []int{1033}},
	{ID: 861, Name: "slit_left", Min: 0.0, Max: 1.0, Default: 1.0, Drivers: []int{1034}},
	{ID: 862, Name: "slit_right", Min: 0.0, Max: 1.0, Default: 1.0, Drivers: []int{1035}},
	{ID: 1018, Name: "shirt_wrinkles_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "shirt_wrinkles.tga", SkipIfZero: true}},
	{ID: 1019, Name: "pants_wrinkles_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "pants_wrinkles.tga", SkipIfZero: true}},
	{ID: 1020, Name: "shirt_sleeve_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "shirt_sleeve_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1021, Name: "shirt_bottom_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "shirt_bottom_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1022, Name: "shirt_collar_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "shirt_collar_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1023, Name: "pants_length_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "pants_length_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1024, Name: "pants_crotch_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "pants_crotch_alpha.tga", SkipIfZero: true}},
	{ID: 1025, Name: "pants_waist_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "pants_waist_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1026, Name: "glove_length_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "glove_length_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1027, Name: "glove_fingers_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "glove_fingers_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1028, Name: "jacket_sleeve_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "jacket_sleeve_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1029, Name: "jacket_collar_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "jacket_collar_alpha.tga", SkipIfZero: true, MultiplyBlend: true}},
	{ID: 1030, Name: "jacket_length_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "jacket_length_alpha.tga", SkipIfZero: true}},
	{ID: 1031, Name: "skirt_length_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "skirt_length_alpha.tga", SkipIfZero: true}},
	{ID: 1032, Name: "skirt_slit_front_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "skirt_slit_front_alpha.tga", SkipIfZero: true}},
	{ID: 1033, Name: "skirt_slit_back_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "skirt_slit_back_alpha.tga", SkipIfZero: true}},
	{ID: 1034, Name: "skirt_slit_left_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "skirt_slit_left_alpha.tga", SkipIfZero: true}},
	{ID: 1035, Name: "skirt_slit_right_alpha", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "skirt_slit_right_alpha.tga", SkipIfZero: true}},
	{ID: 1036, Name: "breast_physics_updown_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1037, Name: "breast_physics_inout_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1038, Name: "belly_physics_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1039, Name: "butt_physics_updown_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1040, Name: "butt_physics_leftright_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1041, Name: "fat_head_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1042, Name: "fat_torso_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1043, Name: "fat_legs_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1044, Name: "muscular_torso_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1045, Name: "bump_base", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "bump_base.tga"}, Bump: true},
	{ID: 1046, Name: "bump_upperdef", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "bump_upperdef.tga"}, Bump: true},
	{ID: 1047, Name: "bump_lowerdef", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0, Alpha: &AlphaSpec{TGAFile: "bump_lowerdef.tga"}, Bump: true},
	{ID: 1048, Name: "eyelid_shading_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1049, Name: "lip_shading_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
	{ID: 1050, Name: "body_freckles_driven", Group: 1, Min: 0.0, Max: 1.0, Default: 0.0},
}
