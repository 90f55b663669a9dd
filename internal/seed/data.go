// ABOUTME: Canned catalog data for the demo seed and the bundled 20-week program.
// ABOUTME: Exercise library, mobility flows, blocks, and the week/day schedule.
package seed

import "github.com/tomaszwojcikowski/fitrack3/internal/models"

// ProgramName identifies the bundled program; seeding is keyed on it.
const ProgramName = "20-Week Integrated Strength Program"

func ex(name, muscle string, typ models.ExerciseType, equipment, instructions, notes string) models.Exercise {
	return models.Exercise{
		Name:         name,
		MuscleGroup:  muscle,
		Type:         typ,
		Equipment:    equipment,
		Instructions: instructions,
		CoachNotes:   notes,
	}
}

// demoExercises is the minimal starter catalog for an empty database.
func demoExercises() []models.Exercise {
	return []models.Exercise{
		ex("Squat", "Legs", models.TypeCompound, "Barbell", "", ""),
		ex("Bench Press", "Chest", models.TypeCompound, "Barbell", "", ""),
		ex("Deadlift", "Back", models.TypeCompound, "Barbell", "", ""),
		ex("Overhead Press", "Shoulders", models.TypeCompound, "Barbell", "", ""),
		ex("Barbell Row", "Back", models.TypeCompound, "Barbell", "", ""),
		ex("Pull-ups", "Back", models.TypeCompound, "Bodyweight", "", ""),
		ex("Dips", "Chest", models.TypeCompound, "Bodyweight", "", ""),
		ex("Lunges", "Legs", models.TypeCompound, "Dumbbell", "", ""),
		ex("Bicep Curls", "Arms", models.TypeIsolation, "Dumbbell", "", ""),
		ex("Tricep Extensions", "Arms", models.TypeIsolation, "Dumbbell", "", ""),
	}
}

// programExercises is the full movement library the 20-week program draws
// from. Names are the lookup key, so they must stay stable.
func programExercises() []models.Exercise {
	return []models.Exercise{
		// Pulling
		ex("Pull-ups", "Back", models.TypeCompound, "Bodyweight",
			"Start from dead hang, pull until chin is over bar, lower with control",
			"Focus on scapular engagement. Avoid kipping unless specified."),
		ex("Weighted Pull-ups", "Back", models.TypeCompound, "Weight Belt",
			"Pull-ups with additional weight attached to belt or dip belt",
			"Use a weight you can control perfectly. Progress weight gradually."),
		ex("Mixed-Grip Pull-ups", "Back", models.TypeCompound, "Bodyweight",
			"One hand pronated, one supinated. Switch grip each set.",
			"This prepares you for archer pull-ups. Focus on even pulling."),
		ex("Archer Pull-up Negatives", "Back", models.TypeCompound, "Bodyweight",
			"Pull-up with one arm extended, slow negative (3-5s)",
			"This is the gateway to one-arm pull-ups. Control is everything."),
		ex("Offset Pull-ups (Band Assist)", "Back", models.TypeCompound, "Resistance Band",
			"One hand on bar, other hand on resistance band for assistance",
			"Main arm does most of the work. Band provides minimal help."),
		ex("Ring Rows", "Back", models.TypeCompound, "Rings",
			"Horizontal pulling on rings, body straight, pull chest to rings",
			"Adjust difficulty by changing foot position. Lower is harder."),
		ex("Archer Row Negatives", "Back", models.TypeCompound, "Rings",
			"Row with one arm extended, focus on slow negative",
			"Prepares for full archer rows. Keep body straight."),
		ex("Archer Rows (Assisted)", "Back", models.TypeCompound, "Rings",
			"Archer row with opposite arm providing minimal assistance",
			"Progress from negatives to assisted to full archers."),
		ex("Banded Straight Arm Pulldowns", "Back", models.TypeIsolation, "Resistance Band",
			"Arms straight, pull band down to hips, focus on lat activation",
			"This is activation work. Light band, focus on feeling the lats."),

		// Pushing
		ex("Ring Push-ups", "Chest", models.TypeCompound, "Rings",
			"Push-ups on rings, rings at chest height when at bottom",
			"Rings add instability. Keep body straight, control the descent."),
		ex("Ring Push-ups (RTO)", "Chest", models.TypeCompound, "Rings",
			"Push-ups with rings turned out at the top position",
			"This is significantly harder. Turn rings out only at the top."),
		ex("Weighted Push-ups (on Parallettes/Bars)", "Chest", models.TypeCompound, "Parallettes, Weight Vest",
			"Push-ups with weight vest or plate on back",
			"Parallettes allow deeper range of motion and wrist comfort."),
		ex("Pseudo-Planche Push-ups", "Chest", models.TypeAdvanced, "Parallettes",
			"Push-up with significant forward lean, shoulders in front of hands",
			"This is a straight-arm strength builder. Lean is key."),
		ex("Dips", "Chest", models.TypeCompound, "Parallel Bars",
			"Lower until upper arms parallel to ground, push back up",
			"Control the negative. Only go as deep as shoulders feel comfortable."),
		ex("Weighted Dips", "Chest", models.TypeCompound, "Weight Belt",
			"Dips with additional weight on belt",
			"Progress weight gradually. Protect your shoulders."),
		ex("Ring Dips", "Chest", models.TypeCompound, "Rings",
			"Dips on rings with rings turned out",
			"Much harder than bar dips due to instability."),

		// Lower body
		ex("Bulgarian Split Squat", "Legs", models.TypeCompound, "Bench, Dumbbells",
			"Rear foot elevated, lower front leg to 90 degrees",
			"Control 3s negative. Only go as deep as knee feels 100% pain-free."),
		ex("Cossack Squats", "Legs", models.TypeCompound, "Bodyweight",
			"Wide stance, shift weight to one leg, other leg straight",
			"Focus on depth and mobility. Great for hip health."),

		// Core
		ex("Hollow Body Rocks", "Core", models.TypeIsolation, "Bodyweight",
			"Hollow body position, rock back and forth",
			"Lower back pressed to floor. Small controlled rocks."),
		ex("Hollow Body Hold", "Core", models.TypeIsolation, "Bodyweight",
			"Hollow body position, hold static",
			"Arms and legs off ground, lower back pressed to floor."),
		ex("L-Sit Progression", "Core", models.TypeAdvanced, "Parallettes",
			"Progress from tuck to single-leg to full L-sit",
			"Push shoulders down. Progress when you can hold for all prescribed time."),
		ex("L-Sit Pull-ups (Tuck)", "Back", models.TypeAdvanced, "Bodyweight",
			"Pull-ups while holding tuck L-sit position",
			"Keep core engaged throughout. Start with tuck."),
		ex("L-Sit Pull-ups (Single Leg)", "Back", models.TypeAdvanced, "Bodyweight",
			"Pull-ups with one leg extended",
			"Alternate legs each set."),
		ex("L-Sit Pull-ups (Full)", "Back", models.TypeAdvanced, "Bodyweight",
			"Pull-ups with full L-sit position",
			"Both legs extended at 90 degrees. Ultimate core-pull combo."),
		ex("Hanging Knee Raises", "Core", models.TypeCompound, "Pull-up Bar",
			"Hang from bar, raise knees to chest, slow controlled",
			"Avoid swinging. Control the movement."),
		ex("Hanging Leg Raises", "Core", models.TypeCompound, "Pull-up Bar",
			"Hang from bar, raise straight legs to 90 degrees",
			"Can do tuck or straight legs based on strength."),
		ex("Hanging Windshield Wipers (Bent)", "Core", models.TypeAdvanced, "Pull-up Bar",
			"Legs raised, rotate side to side",
			"Bent knees make it easier. Great for obliques."),
		ex("Hanging Windshield Wipers (Straight)", "Core", models.TypeAdvanced, "Pull-up Bar",
			"Straight legs raised, rotate side to side",
			"Advanced movement. Control is crucial."),
		ex("Toes-to-Bar (Strict)", "Core", models.TypeAdvanced, "Pull-up Bar",
			"Hang from bar, touch toes to bar, no kipping",
			"This is strict, no momentum. Very challenging."),
		ex("Ab Wheel Rollouts (Knees)", "Core", models.TypeCompound, "Ab Wheel",
			"From knees, roll out while maintaining hollow body",
			"Don't let hips sag. Roll out as far as you can control."),
		ex("Plank Drags", "Core", models.TypeCompound, "Weight Plate",
			"In plank position, drag weight from side to side",
			"Keep hips level. Great anti-rotation work."),
		ex("Side Plank", "Core", models.TypeIsolation, "Bodyweight",
			"Side plank position, hold or add hip dips",
			"Body in straight line. Can add hip dips for extra work."),
		ex("Side Plank Crunches", "Core", models.TypeIsolation, "Bodyweight",
			"Side plank with top elbow to knee crunch",
			"Targets obliques. Controlled movement."),
		ex("Plank with Shoulder Taps", "Core", models.TypeCompound, "Bodyweight",
			"Hold plank, alternate tapping opposite shoulders",
			"Keep hips still. Great anti-rotation exercise."),
		ex("Bird-Dog", "Core", models.TypeIsolation, "Bodyweight",
			"On all fours, extend opposite arm and leg",
			"Focus on stability. Great for lower back health."),
		ex("Arch Body Rocks", "Back", models.TypeIsolation, "Bodyweight",
			"Face down, arch position (superman), rock",
			"Counterbalance to hollow body. Posterior chain activation."),
		ex("Arch Body Hold", "Back", models.TypeIsolation, "Bodyweight",
			"Face down, arch position, hold static",
			"Squeeze glutes and engage posterior chain."),
		ex("Russian Twists", "Core", models.TypeIsolation, "Bodyweight",
			"Seated, lean back, rotate torso side to side",
			"Can hold weight for added difficulty. Control the rotation."),
		ex("Seated Windshield Wipers", "Core", models.TypeIsolation, "Bodyweight",
			"Seated, legs extended, rotate legs side to side",
			"Slow and controlled. Great for obliques."),
		ex("L-Sit Flutter Kicks", "Core", models.TypeAdvanced, "Parallettes",
			"Hold L-sit position with small flutter kicks",
			"Maintain L-sit position while adding flutter kicks."),
		ex("Renegade Rows", "Core", models.TypeCompound, "Dumbbells",
			"In plank on dumbbells, row one arm at a time",
			"Keep hips level. Can do bodyweight or light weight."),
		ex("Dragon Flag Negatives", "Core", models.TypeAdvanced, "Bench",
			"Lie on bench, raise body to vertical, slow negative",
			"Can do tucked or single leg. Very advanced."),

		// Skill work
		ex("HSPU", "Shoulders", models.TypeAdvanced, "Wall",
			"Handstand push-ups against wall",
			"Progress from pike push-ups if needed. Control the descent."),
		ex("Crow Stand", "Core", models.TypeSkill, "Bodyweight",
			"Hands on ground, knees on elbows, lean forward until feet lift",
			"Start with weight shifts. Build confidence before full balance."),
		ex("Wall Handstand Hold", "Shoulders", models.TypeSkill, "Wall",
			"Kick up to handstand against wall, hold",
			"Focus on pushing through shoulders, hollow body position."),
		ex("Ring Support Hold (RTO)", "Chest", models.TypeSkill, "Rings",
			"Support position on rings with rings turned out",
			"Foundation for ring dips. Turn rings out as much as possible."),
		ex("Pseudo-Planche Holds", "Chest", models.TypeSkill, "Parallettes",
			"Lean forward in push-up position, shoulders in front of hands",
			"Building straight-arm strength. Hold the lean."),
		ex("Skin the Cat", "Shoulders", models.TypeSkill, "Pull-up Bar",
			"Hang, tuck knees, rotate backwards through shoulders",
			"Great for shoulder mobility. Go slow, stop if painful."),

		// Posterior chain
		ex("Romanian Deadlift (RDL)", "Back", models.TypeCompound, "Barbell",
			"Barbell RDL with focus on hip hinge",
			"Push hips back, feel hamstring stretch. Don't round back."),
		ex("Barbell/Dumbbell Good Morning", "Back", models.TypeCompound, "Barbell",
			"Bar on back, hinge at hips keeping back straight",
			"This is a hinge, not a squat. Start light."),
		ex("Single-Leg Romanian Deadlift (SL-RDL)", "Back", models.TypeCompound, "Dumbbell",
			"Single leg RDL with dumbbell in opposite hand",
			"Balance and flat back are key. Great unilateral work."),
		ex("Weighted Glute Bridge", "Legs", models.TypeIsolation, "Dumbbell",
			"Glute bridge with weight on hips, 2s squeeze at top",
			"Focus on glute squeeze, not lower back."),
		ex("Nordic Hamstring Negatives", "Legs", models.TypeAdvanced, "Bodyweight",
			"Kneeling, lower body forward with control",
			"Extremely challenging. Can substitute with easier variations."),
		ex("Single-Leg Calf Raises", "Legs", models.TypeIsolation, "Step",
			"On step, single leg calf raise to failure",
			"Full range of motion. Control the negative."),
		ex("Banded Face Pulls", "Shoulders", models.TypeIsolation, "Resistance Band",
			"Pull band to face while externally rotating shoulders",
			"This is prehab. Focus on external rotation."),

		// Warmup and mobility
		ex("Wrist Mobility", "Arms", models.TypeMobility, "Bodyweight",
			"Wrist circles, flexion, extension",
			"Essential before any hand-balancing or gymnastics work."),
		ex("Shoulder CARs", "Shoulders", models.TypeMobility, "Bodyweight",
			"Controlled Articular Rotations for shoulders",
			"Full range shoulder circles. Slow and controlled."),
		ex("Cat-Cow", "Core", models.TypeMobility, "Bodyweight",
			"On all fours, alternate between cat and cow positions",
			"Great for spinal mobility. Breathe with the movement."),
		ex("Spiderman Lunge w/ T-Spine Rotation", "Legs", models.TypeMobility, "Bodyweight",
			"Lunge position, rotate torso toward front leg",
			"Opens hips and thoracic spine. Great dynamic warmup."),
		ex("Deep Squat Hold", "Legs", models.TypeMobility, "Bodyweight",
			"Bodyweight squat, hold at bottom position",
			"Work on depth and comfort. Can hold onto support if needed."),
		ex("Glute Bridge", "Legs", models.TypeActivation, "Bodyweight",
			"Lie on back, drive through heels, squeeze glutes at top",
			"Warmup activation. 2s squeeze at top."),
		ex("Banded Side-Steps", "Legs", models.TypeActivation, "Resistance Band",
			"Band around knees, sidestep maintaining tension",
			"Activates glute medius. Great for knee health."),
		ex("Bodyweight Good Mornings", "Back", models.TypeActivation, "Bodyweight",
			"Hip hinge pattern, bodyweight only",
			"Practice the hinge pattern. Warmup for posterior chain."),

		// Stretches
		ex("Dead Hang", "Back", models.TypeStretch, "Pull-up Bar",
			"Hang from bar, relax shoulders, decompress spine",
			"Great for shoulder and spine health. Just hang and breathe."),
		ex("Wrist/Forearm Stretches", "Arms", models.TypeStretch, "Bodyweight",
			"Various wrist and forearm stretches",
			"Essential after rings, HSPU, or L-sits."),
		ex("Child's Pose w/ Lat Stretch", "Back", models.TypeStretch, "Bodyweight",
			"Child's pose with arms extended, feel lat stretch",
			"Walk hands to side for deeper lat stretch."),
		ex("Chest Stretch", "Chest", models.TypeStretch, "Doorway/Rings",
			"Stretch pecs on doorway or rings",
			"Essential after pushing work."),
		ex("Tricep/Chest \"Dip\" Stretch", "Arms", models.TypeStretch, "Parallel Bars",
			"Support position on bars, sink into stretch",
			"Gentle stretch after dips."),
		ex("Couch Stretch", "Legs", models.TypeStretch, "Couch/Wall",
			"Rear leg on couch, front leg in lunge, stretch hip flexor",
			"Essential for Bulgarian split squats. Great for hip health."),
		ex("Pigeon Stretch", "Legs", models.TypeStretch, "Bodyweight",
			"Front leg bent, rear leg extended, sink into hip stretch",
			"Deep glute stretch. Hold for extended time."),
		ex("Seated Forward Fold", "Legs", models.TypeStretch, "Bodyweight",
			"Seated, legs extended, fold forward",
			"Hamstring stretch. Breathe into it."),
		ex("Wall Calf Stretch", "Legs", models.TypeStretch, "Wall",
			"Front of foot on wall, lean in to stretch calf",
			"Both straight and bent knee versions."),
		ex("Bicep Stretch", "Arms", models.TypeStretch, "Wall",
			"Arm extended on wall, rotate body away",
			"After heavy pulling work."),
		ex("Seated Spinal Twist", "Core", models.TypeStretch, "Bodyweight",
			"Seated, rotate torso, use opposite elbow for leverage",
			"Great for obliques and spine mobility."),
		ex("\"Archer\" Lat Stretch", "Back", models.TypeStretch, "Bodyweight",
			"Seated, side bend to stretch lat",
			"Specific for archer pull-up work."),
		ex("Wall Slides", "Shoulders", models.TypeMobility, "Wall",
			"Back against wall, slide arms up and down",
			"Great for scapular health."),
		ex("Scapular Pull-ups", "Back", models.TypeActivation, "Pull-up Bar",
			"Hang, pull scapula down without bending arms",
			"Activation for pulling movements."),
	}
}

// mobilityFlows is the guided flow library used by recovery days.
func mobilityFlows() []models.MobilityFlow {
	return []models.MobilityFlow{
		{Name: "Flow 1: Squat/Lunge", FlowNumber: 1, Duration: "10-15 min",
			Description: "Deep Squat → Spiderman Lunge → Downward Dog → Plank → Slow Push-up → Upward Dog → Downward Dog → Deep Squat → Stand"},
		{Name: "Flow 2: Beast to Plank", FlowNumber: 2, Duration: "10-15 min",
			Description: "Quadruped → Beast (knees 1\" off ground) → Plank → Pike to Downward Dog → Spinal wave to Upward Dog → Plank → Beast → Knees down"},
		{Name: "Flow 3: Cossack/Lunge", FlowNumber: 3, Duration: "10-15 min",
			Description: "Wide stance → Cossack Squat (L) → Low Lunge (L) → Plank → Downward Dog → Low Lunge (R) → Cossack Squat (R) → Center"},
		{Name: "Flow 4: Spinal Wave", FlowNumber: 4, Duration: "10-15 min",
			Description: "Standing roll down → Walk to Plank → Segmental Cat-Cows → Downward Dog → Spinal Waves → Walk back → Roll up"},
		{Name: "Flow 5: Freestyle", FlowNumber: 5, Duration: "10-15 min",
			Description: "Combine movements from above flows. Focus on tight areas. Move continuously with breath."},
		{Name: "Flow 6: Thoracic & Shoulder", FlowNumber: 6, Duration: "10-15 min",
			Description: "Quadruped → Cat-Cow (5x) → Thread the Needle (5x each) → Scapular Push-ups (10x) → Prone Snow Angels (10x) → Child's Pose"},
		{Name: "Flow 7: Hip Opener", FlowNumber: 7, Duration: "10-15 min",
			Description: "Deep Squat Hold (1min) → Spiderman Lunges (10x) → Cossack Squats (10x) → 90/90 stretch (30s each) → Frog Stretch (1min) → Pigeon (30s each)"},
		{Name: "Flow 8: Spinal Decompression", FlowNumber: 8, Duration: "10-15 min",
			Description: "Dead Hang (1min or 3x20s) → Segmental Cat-Cow (10x) → Seal Stretch (1min) → Supine Twist (1min each) → Child's Pose (1min)"},
	}
}

// programBlocks describes the five four-week training blocks.
func programBlocks(programID int64) []models.Block {
	return []models.Block{
		{ProgramID: programID, BlockNumber: 1, Name: "Foundation",
			Goals:  "Establish strong volume base. Re-groove perfect form on 5x5s. Introduce Bulgarian Split Squats.",
			SkillA: "HSPU", SkillB: "Crow Stand", WeekStart: 1, WeekEnd: 4},
		{ProgramID: programID, BlockNumber: 2, Name: "Intensification",
			Goals:  "Push weighted lifts. Introduce density-based volume (EMOM). Progress to feet-elevated ring work.",
			SkillA: "Wall Handstand Hold", SkillB: "Ring Support Hold (RTO)", WeekStart: 5, WeekEnd: 8},
		{ProgramID: programID, BlockNumber: 3, Name: "Pre-Unilateral",
			Goals:  "Introduce asymmetrical pulling (bridge to Archers). Introduce PPPU for straight-arm strength.",
			SkillA: "Pseudo-Planche Holds", SkillB: "Cossack Squats", WeekStart: 9, WeekEnd: 12},
		{ProgramID: programID, BlockNumber: 4, Name: "Accumulation",
			Goals:  "Realize new bodyweight volume (AMRAP). Re-introduce weighted pull-ups to set new PRs. Introduce Archer Rows.",
			SkillA: "Skin the Cat", SkillB: "Ring Dips", WeekStart: 13, WeekEnd: 16},
		{ProgramID: programID, BlockNumber: 5, Name: "Peak & Unilateral",
			Goals:  "Make the Archer Pull-up the primary lift. Peak all lifts.",
			SkillA: "HSPU (Volume)", SkillB: "Archer Pull-up (Form Check)", WeekStart: 17, WeekEnd: 20},
	}
}

// workoutDescriptions labels the four repeating workout days.
func workoutDescriptions() map[string]string {
	return map[string]string{
		"A": "Pull Volume Day - High rep pulling work with accessories",
		"B": "Full Body Intensity Day - Heavy weighted work and skills",
		"C": "Active Recovery & Core - Core circuit and mobility flow",
		"D": "Optional Posterior Chain - Hinge movements, glutes, calves",
	}
}

// programGoals lists the program's stated aims.
func programGoals() []string {
	return []string{
		"Increase pulling strength (max pull-ups, pull-up variations)",
		"Maintain all-around strength (pushing, lower body) while protecting knee health",
		"Build dynamic and static core strength",
		"Maintain posterior chain (hip hinge) strength",
	}
}
